package summary_test

import (
	"context"
	"testing"

	"Cartera/internal/domain/summary"
	"Cartera/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type fakeRepository struct {
	addToPeriodFn func(ctx context.Context, workspaceID ulid.ULID, year, month int, income, expense decimal.Decimal) error
	getByPeriodFn func(ctx context.Context, workspaceID ulid.ULID, year, month int) (*summary.MonthlySummary, error)
}

func (f *fakeRepository) AddToPeriod(ctx context.Context, workspaceID ulid.ULID, year, month int, income, expense decimal.Decimal) error {
	if f.addToPeriodFn != nil {
		return f.addToPeriodFn(ctx, workspaceID, year, month, income, expense)
	}
	return nil
}

func (f *fakeRepository) GetByPeriod(ctx context.Context, workspaceID ulid.ULID, year, month int) (*summary.MonthlySummary, error) {
	if f.getByPeriodFn != nil {
		return f.getByPeriodFn(ctx, workspaceID, year, month)
	}
	return nil, nil
}

func TestRecordExpenseAccumulatesOnExpenseSide(t *testing.T) {
	var gotIncome, gotExpense decimal.Decimal
	repo := &fakeRepository{
		addToPeriodFn: func(ctx context.Context, workspaceID ulid.ULID, year, month int, income, expense decimal.Decimal) error {
			gotIncome, gotExpense = income, expense
			return nil
		},
	}
	svc := summary.NewService(repo)

	err := svc.RecordExpense(context.Background(), pkg.GenerateULIDObject(), 2024, 2, decimal.RequireFromString("250.00"))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !gotIncome.IsZero() {
		t.Errorf("despesa nao deveria tocar a receita, obteve %s", gotIncome)
	}
	if !gotExpense.Equal(decimal.RequireFromString("250.00")) {
		t.Errorf("esperava despesa 250.00, obteve %s", gotExpense)
	}
}

func TestRecordIncomeAccumulatesOnIncomeSide(t *testing.T) {
	var gotIncome, gotExpense decimal.Decimal
	repo := &fakeRepository{
		addToPeriodFn: func(ctx context.Context, workspaceID ulid.ULID, year, month int, income, expense decimal.Decimal) error {
			gotIncome, gotExpense = income, expense
			return nil
		},
	}
	svc := summary.NewService(repo)

	err := svc.RecordIncome(context.Background(), pkg.GenerateULIDObject(), 2024, 2, decimal.RequireFromString("1000.00"))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !gotIncome.Equal(decimal.RequireFromString("1000.00")) {
		t.Errorf("esperava receita 1000.00, obteve %s", gotIncome)
	}
	if !gotExpense.IsZero() {
		t.Errorf("receita nao deveria tocar a despesa, obteve %s", gotExpense)
	}
}

func TestRecordExpenseValidatesPeriodAndAmount(t *testing.T) {
	svc := summary.NewService(&fakeRepository{})
	ctx := context.Background()
	workspaceID := pkg.GenerateULIDObject()
	amount := decimal.RequireFromString("10.00")

	if err := svc.RecordExpense(ctx, workspaceID, 2024, 0, amount); err == nil {
		t.Error("mes zero deveria falhar")
	}
	if err := svc.RecordExpense(ctx, workspaceID, 2024, 13, amount); err == nil {
		t.Error("mes 13 deveria falhar")
	}
	if err := svc.RecordExpense(ctx, workspaceID, 0, 5, amount); err == nil {
		t.Error("ano zero deveria falhar")
	}
	if err := svc.RecordExpense(ctx, workspaceID, 2024, 5, decimal.RequireFromString("-1.00")); err == nil {
		t.Error("valor negativo deveria falhar")
	}
}
