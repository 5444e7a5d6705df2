package creditcard

import (
	"context"

	"Cartera/internal/domain/transaction"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Colaboradores externos do motor de faturas. As implementações reais vivem
// nos respectivos domínios; o pagamento de fatura só depende destes contratos.

type WorkspaceLedger interface {
	Credit(ctx context.Context, workspaceID ulid.ULID, amount decimal.Decimal) error
	Debit(ctx context.Context, workspaceID ulid.ULID, amount decimal.Decimal) error
}

type AccountLedger interface {
	Debit(ctx context.Context, accountID ulid.ULID, amount decimal.Decimal) error
}

type TransactionLedger interface {
	CreateTransaction(ctx context.Context, req *transaction.CreateTransactionRequest) (*transaction.Transaction, error)
}

type SummaryRecorder interface {
	RecordExpense(ctx context.Context, workspaceID ulid.ULID, year, month int, amount decimal.Decimal) error
}
