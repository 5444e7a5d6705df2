package transaction

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

// CreateTransaction registra um lançamento no extrato do workspace e devolve a
// entidade criada para que o chamador guarde a referência de auditoria.
func (s *Service) CreateTransaction(ctx context.Context, req *CreateTransactionRequest) (*Transaction, error) {
	if !req.Type.IsValid() {
		return nil, appErrors.NewValidationError("type", "tipo de transacao invalido")
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	now := time.Now()
	tx := &Transaction{
		Id:            pkg.GenerateULIDObject(),
		WorkspaceId:   req.WorkspaceId,
		BankAccountId: req.BankAccountId,
		Type:          req.Type,
		Amount:        req.Amount,
		Description:   strings.TrimSpace(req.Description),
		Date:          date,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repository.Create(ctx, tx); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return tx, nil
}

func (s *Service) GetTransactionById(ctx context.Context, transactionID ulid.ULID) (*Transaction, error) {
	tx, err := s.Repository.GetById(ctx, transactionID)
	if err != nil {
		return nil, appErrors.ErrNotFound.WithError(err)
	}
	return tx, nil
}

func (s *Service) ListTransactions(ctx context.Context, workspaceID ulid.ULID, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	return s.Repository.GetByWorkspaceId(ctx, workspaceID, pagination)
}

type CreateTransactionRequest struct {
	WorkspaceId   ulid.ULID
	BankAccountId *ulid.ULID
	Type          Type
	Amount        decimal.Decimal
	Description   string
	Date          time.Time
}
