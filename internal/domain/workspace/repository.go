package workspace

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, workspace *Workspace) error
	GetById(ctx context.Context, workspaceID ulid.ULID) (*Workspace, error)
	// AdjustBalance soma delta ao saldo do workspace de forma atômica.
	AdjustBalance(ctx context.Context, workspaceID ulid.ULID, delta decimal.Decimal) error
}
