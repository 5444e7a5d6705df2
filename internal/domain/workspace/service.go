package workspace

import (
	"context"
	"strings"
	"time"

	appErrors "Cartera/internal/errors"
	"Cartera/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) CreateWorkspace(ctx context.Context, req *CreateWorkspaceRequest) (*Workspace, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "nao pode ser vazio")
	}

	now := time.Now()
	ws := &Workspace{
		Id:        pkg.GenerateULIDObject(),
		Name:      name,
		Balance:   decimal.Zero,
		Shared:    req.Shared,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, ws); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return ws, nil
}

func (s *Service) GetWorkspaceById(ctx context.Context, workspaceID ulid.ULID) (*Workspace, error) {
	ws, err := s.Repository.GetById(ctx, workspaceID)
	if err != nil {
		return nil, appErrors.ErrWorkspaceNotFound.WithError(err)
	}
	return ws, nil
}

// Credit soma um valor ao saldo agregado do workspace.
func (s *Service) Credit(ctx context.Context, workspaceID ulid.ULID, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return appErrors.NewValidationError("amount", "deve ser maior ou igual a zero")
	}
	if err := s.Repository.AdjustBalance(ctx, workspaceID, amount); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// Debit subtrai um valor do saldo agregado do workspace. O saldo agregado pode
// ficar negativo; quem controla fundos é a conta bancária, não o workspace.
func (s *Service) Debit(ctx context.Context, workspaceID ulid.ULID, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return appErrors.NewValidationError("amount", "deve ser maior ou igual a zero")
	}
	if err := s.Repository.AdjustBalance(ctx, workspaceID, amount.Neg()); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

type CreateWorkspaceRequest struct {
	Name   string
	Shared bool
}
