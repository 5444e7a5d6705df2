package summary

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Repository interface {
	// AddToPeriod incrementa o acumulado do período, criando a linha quando ela
	// ainda não existe.
	AddToPeriod(ctx context.Context, workspaceID ulid.ULID, year, month int, income, expense decimal.Decimal) error
	GetByPeriod(ctx context.Context, workspaceID ulid.ULID, year, month int) (*MonthlySummary, error)
}
