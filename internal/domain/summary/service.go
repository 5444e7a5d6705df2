package summary

import (
	"context"

	appErrors "Cartera/internal/errors"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) RecordExpense(ctx context.Context, workspaceID ulid.ULID, year, month int, amount decimal.Decimal) error {
	if err := validatePeriod(year, month); err != nil {
		return err
	}
	if amount.IsNegative() {
		return appErrors.NewValidationError("amount", "deve ser maior ou igual a zero")
	}
	if err := s.Repository.AddToPeriod(ctx, workspaceID, year, month, decimal.Zero, amount); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) RecordIncome(ctx context.Context, workspaceID ulid.ULID, year, month int, amount decimal.Decimal) error {
	if err := validatePeriod(year, month); err != nil {
		return err
	}
	if amount.IsNegative() {
		return appErrors.NewValidationError("amount", "deve ser maior ou igual a zero")
	}
	if err := s.Repository.AddToPeriod(ctx, workspaceID, year, month, amount, decimal.Zero); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetSummary(ctx context.Context, workspaceID ulid.ULID, year, month int) (*MonthlySummary, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	return s.Repository.GetByPeriod(ctx, workspaceID, year, month)
}

func validatePeriod(year, month int) error {
	if year < 1 {
		return appErrors.NewValidationError("year", "invalido")
	}
	if month < 1 || month > 12 {
		return appErrors.NewValidationError("month", "deve estar entre 1 e 12")
	}
	return nil
}
