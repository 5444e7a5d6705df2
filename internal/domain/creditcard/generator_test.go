package creditcard_test

import (
	"testing"
	"time"

	"Cartera/internal/domain/creditcard"
	"Cartera/internal/pkg"

	"github.com/shopspring/decimal"
)

func testCard(cutoffDay, dueDay int) *creditcard.Card {
	return &creditcard.Card{
		Id:          pkg.GenerateULIDObject(),
		WorkspaceId: pkg.GenerateULIDObject(),
		Name:        "Cartao Principal",
		Network:     creditcard.NetworkVisa,
		CutoffDay:   cutoffDay,
		DueDay:      dueDay,
	}
}

func testPurchase(card *creditcard.Card, amount string, date time.Time, count int) *creditcard.CreditPurchase {
	return &creditcard.CreditPurchase{
		Id:               pkg.GenerateULIDObject(),
		CardId:           card.Id,
		WorkspaceId:      card.WorkspaceId,
		Amount:           decimal.RequireFromString(amount),
		PurchaseDate:     date,
		InstallmentCount: count,
	}
}

func TestGenerateInstallmentsSplitsEvenly(t *testing.T) {
	card := testCard(25, 5)
	purchase := testPurchase(card, "300.00", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), 3)

	installments := creditcard.GenerateInstallments(purchase, card)

	if len(installments) != 3 {
		t.Fatalf("esperava 3 parcelas, obteve %d", len(installments))
	}

	wantDates := []time.Time{
		time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC),
	}

	for i, installment := range installments {
		if installment.Number != i+1 {
			t.Errorf("parcela %d: esperava numero %d, obteve %d", i, i+1, installment.Number)
		}
		if !installment.Amount.Equal(decimal.RequireFromString("100.00")) {
			t.Errorf("parcela %d: esperava 100.00, obteve %s", i, installment.Amount)
		}
		if !installment.DueDate.Equal(wantDates[i]) {
			t.Errorf("parcela %d: esperava vencimento %v, obteve %v", i, wantDates[i], installment.DueDate)
		}
		if installment.Paid {
			t.Errorf("parcela %d: nao deveria nascer paga", i)
		}
		if installment.StatementId != nil {
			t.Errorf("parcela %d: nao deveria nascer com fatura", i)
		}
	}
}

func TestGenerateInstallmentsAssignsRemainderToLast(t *testing.T) {
	card := testCard(25, 5)
	purchase := testPurchase(card, "100.00", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), 3)

	installments := creditcard.GenerateInstallments(purchase, card)

	if len(installments) != 3 {
		t.Fatalf("esperava 3 parcelas, obteve %d", len(installments))
	}

	if !installments[0].Amount.Equal(decimal.RequireFromString("33.33")) {
		t.Errorf("primeira parcela: esperava 33.33, obteve %s", installments[0].Amount)
	}
	if !installments[2].Amount.Equal(decimal.RequireFromString("33.34")) {
		t.Errorf("ultima parcela: esperava 33.34, obteve %s", installments[2].Amount)
	}

	sum := decimal.Zero
	for _, installment := range installments {
		sum = sum.Add(installment.Amount)
	}
	if !sum.Equal(purchase.Amount) {
		t.Fatalf("soma das parcelas %s difere do valor da compra %s", sum, purchase.Amount)
	}
}

func TestGenerateInstallmentsAfterCutoffSkipsAMonth(t *testing.T) {
	card := testCard(25, 5)
	purchase := testPurchase(card, "50.00", time.Date(2024, time.January, 26, 0, 0, 0, 0, time.UTC), 1)

	installments := creditcard.GenerateInstallments(purchase, card)

	if len(installments) != 1 {
		t.Fatalf("esperava 1 parcela, obteve %d", len(installments))
	}

	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	if !installments[0].DueDate.Equal(want) {
		t.Fatalf("esperava vencimento %v, obteve %v", want, installments[0].DueDate)
	}
}

func TestGenerateInstallmentsZeroCountReturnsNothing(t *testing.T) {
	card := testCard(25, 5)
	purchase := testPurchase(card, "80.00", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), 0)

	installments := creditcard.GenerateInstallments(purchase, card)
	if len(installments) != 0 {
		t.Fatalf("compra a vista nao deveria gerar parcelas, obteve %d", len(installments))
	}
}

func TestGenerateInstallmentsClampsFebruaryDueDate(t *testing.T) {
	card := testCard(25, 29)
	purchase := testPurchase(card, "90.00", time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC), 3)

	installments := creditcard.GenerateInstallments(purchase, card)

	if len(installments) != 3 {
		t.Fatalf("esperava 3 parcelas, obteve %d", len(installments))
	}
	if installments[0].DueDate.Day() != 28 {
		t.Errorf("fevereiro deveria ajustar para 28, obteve %d", installments[0].DueDate.Day())
	}
	if installments[1].DueDate.Day() != 29 {
		t.Errorf("marco deveria voltar ao dia 29, obteve %d", installments[1].DueDate.Day())
	}
}
