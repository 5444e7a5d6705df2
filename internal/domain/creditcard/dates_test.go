package creditcard_test

import (
	"testing"
	"time"

	"Cartera/internal/domain/creditcard"
)

func TestProjectDueDateKeepsDayWhenItExists(t *testing.T) {
	base := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	got := creditcard.ProjectDueDate(base, 1, 5)
	want := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("esperava %v, obteve %v", want, got)
	}
}

func TestProjectDueDateClampsToLastDayOfFebruary(t *testing.T) {
	base := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)

	got := creditcard.ProjectDueDate(base, 1, 29)
	want := time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("esperava %v, obteve %v", want, got)
	}
}

func TestProjectDueDateKeepsDay29OnLeapFebruary(t *testing.T) {
	base := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	got := creditcard.ProjectDueDate(base, 1, 29)
	want := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("esperava %v, obteve %v", want, got)
	}
}

func TestProjectDueDateAdjustsEachMonthIndependently(t *testing.T) {
	base := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)

	february := creditcard.ProjectDueDate(base, 1, 29)
	march := creditcard.ProjectDueDate(base, 2, 29)

	if february.Day() != 28 {
		t.Fatalf("fevereiro deveria ajustar para 28, obteve %d", february.Day())
	}
	if march.Day() != 29 {
		t.Fatalf("marco deveria voltar ao dia 29, obteve %d", march.Day())
	}
}

func TestProjectDueDateCrossesYearBoundary(t *testing.T) {
	base := time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC)

	got := creditcard.ProjectDueDate(base, 2, 10)
	want := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("esperava %v, obteve %v", want, got)
	}
}

func TestBillingOffset(t *testing.T) {
	cases := []struct {
		name        string
		purchaseDay int
		cutoffDay   int
		want        int
	}{
		{"antes do corte", 10, 25, 1},
		{"no dia do corte", 25, 25, 1},
		{"depois do corte", 26, 25, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := creditcard.BillingOffset(tc.purchaseDay, tc.cutoffDay)
			if got != tc.want {
				t.Fatalf("esperava offset %d, obteve %d", tc.want, got)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := creditcard.DaysInMonth(2023, time.February); got != 28 {
		t.Fatalf("fevereiro 2023 deveria ter 28 dias, obteve %d", got)
	}
	if got := creditcard.DaysInMonth(2024, time.February); got != 29 {
		t.Fatalf("fevereiro 2024 deveria ter 29 dias, obteve %d", got)
	}
	if got := creditcard.DaysInMonth(2024, time.December); got != 31 {
		t.Fatalf("dezembro deveria ter 31 dias, obteve %d", got)
	}
}

func TestDateOnlyStripsTime(t *testing.T) {
	input := time.Date(2024, time.June, 7, 15, 30, 45, 123, time.FixedZone("X", -3*3600))
	got := creditcard.DateOnly(input)
	want := time.Date(2024, time.June, 7, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("esperava %v, obteve %v", want, got)
	}
}
