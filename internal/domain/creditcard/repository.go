package creditcard

import (
	"context"
	"time"

	"Cartera/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	CreateCard(ctx context.Context, card *Card) error
	UpdateCard(ctx context.Context, card *Card) error
	GetCardById(ctx context.Context, cardID ulid.ULID) (*Card, error)
	GetCardsByWorkspaceId(ctx context.Context, workspaceID ulid.ULID, pagination *pkg.PaginationParams) ([]*Card, int64, error)
	// GetCardsByCutoffDay lista os cartões cujo dia de corte é o dia informado;
	// alimenta o fechamento diário de faturas.
	GetCardsByCutoffDay(ctx context.Context, day int) ([]*Card, error)

	CreatePurchase(ctx context.Context, purchase *CreditPurchase) error
	DeletePurchase(ctx context.Context, purchaseID ulid.ULID) error
	GetPurchaseById(ctx context.Context, purchaseID ulid.ULID) (*CreditPurchase, error)
	GetPurchasesByCardId(ctx context.Context, cardID ulid.ULID, pagination *pkg.PaginationParams) ([]*CreditPurchase, int64, error)

	CreateInstallments(ctx context.Context, installments []*Installment) error
	GetInstallmentsByPurchaseId(ctx context.Context, purchaseID ulid.ULID) ([]*Installment, error)
	GetInstallmentsByStatementId(ctx context.Context, statementID ulid.ULID) ([]*Installment, error)
	// GetOpenInstallmentsDueBetween busca parcelas do cartão sem fatura anexada
	// com vencimento dentro do intervalo fechado [from, to].
	GetOpenInstallmentsDueBetween(ctx context.Context, cardID ulid.ULID, from, to time.Time) ([]*Installment, error)

	GetStatementById(ctx context.Context, statementID ulid.ULID) (*Statement, error)
	// GetStatementByPeriod devolve (nil, nil) quando não existe fatura para o
	// período; é a checagem de idempotência do fechamento.
	GetStatementByPeriod(ctx context.Context, cardID ulid.ULID, year, month int) (*Statement, error)
	GetStatementsByCardId(ctx context.Context, cardID ulid.ULID, pagination *pkg.PaginationParams) ([]*Statement, int64, error)
	// CreateStatementWithInstallments grava a fatura e anexa as parcelas em uma
	// única transação.
	CreateStatementWithInstallments(ctx context.Context, statement *Statement, installmentIDs []ulid.ULID) error
	// SettleStatement, em uma única transação: marca as parcelas da fatura como
	// pagas com a referência da transação, incrementa o contador de parcelas
	// pagas de cada compra (falhando se algum contador estourar o total) e move
	// a fatura para PAID.
	SettleStatement(ctx context.Context, statementID, transactionID ulid.ULID, paidAt time.Time) error
}
