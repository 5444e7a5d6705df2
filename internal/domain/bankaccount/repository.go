package bankaccount

import (
	"context"

	"Cartera/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, account *BankAccount) error
	GetById(ctx context.Context, accountID ulid.ULID) (*BankAccount, error)
	GetByWorkspaceId(ctx context.Context, workspaceID ulid.ULID, pagination *pkg.PaginationParams) ([]*BankAccount, int64, error)
	// AdjustBalance soma delta ao saldo da conta. Para débitos, o ajuste só é
	// aplicado se o saldo resultante não ficar negativo. Retorna o número de
	// linhas afetadas; zero significa conta inexistente ou saldo insuficiente.
	AdjustBalance(ctx context.Context, accountID ulid.ULID, delta decimal.Decimal) (int64, error)
}
