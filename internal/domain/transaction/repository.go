package transaction

import (
	"context"

	"Cartera/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, transaction *Transaction) error
	GetById(ctx context.Context, transactionID ulid.ULID) (*Transaction, error)
	GetByWorkspaceId(ctx context.Context, workspaceID ulid.ULID, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)
}
