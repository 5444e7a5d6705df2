package bankaccount

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

func (s *Service) CreateAccount(ctx context.Context, req *CreateAccountRequest) (*BankAccount, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "nao pode ser vazio")
	}
	if req.InitialBalance.IsNegative() {
		return nil, appErrors.NewValidationError("initial_balance", "deve ser maior ou igual a zero")
	}

	now := time.Now()
	account := &BankAccount{
		Id:          pkg.GenerateULIDObject(),
		WorkspaceId: req.WorkspaceId,
		Name:        name,
		Bank:        strings.TrimSpace(req.Bank),
		Balance:     req.InitialBalance,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repository.Create(ctx, account); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return account, nil
}

func (s *Service) GetAccountById(ctx context.Context, accountID ulid.ULID) (*BankAccount, error) {
	account, err := s.Repository.GetById(ctx, accountID)
	if err != nil {
		return nil, appErrors.ErrAccountNotFound.WithError(err)
	}
	return account, nil
}

func (s *Service) ListAccounts(ctx context.Context, workspaceID ulid.ULID, pagination *pkg.PaginationParams) ([]*BankAccount, int64, error) {
	return s.Repository.GetByWorkspaceId(ctx, workspaceID, pagination)
}

// AdjustBalance credita ou debita a conta. Um débito maior que o saldo
// disponível falha com INSUFFICIENT_FUNDS sem alterar a conta.
func (s *Service) AdjustBalance(ctx context.Context, accountID ulid.ULID, amount decimal.Decimal, direction Direction) error {
	if !direction.IsValid() {
		return appErrors.NewValidationError("direction", "deve ser CREDIT ou DEBIT")
	}
	if amount.IsNegative() || amount.IsZero() {
		return appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	if _, err := s.GetAccountById(ctx, accountID); err != nil {
		return err
	}

	delta := amount
	if direction == DirectionDebit {
		delta = amount.Neg()
	}

	affected, err := s.Repository.AdjustBalance(ctx, accountID, delta)
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	if affected == 0 {
		return appErrors.ErrInsufficientFunds.WithDetails(map[string]interface{}{
			"account_id": accountID.String(),
		})
	}

	return nil
}

// Debit é o atalho usado pelo pagamento de faturas.
func (s *Service) Debit(ctx context.Context, accountID ulid.ULID, amount decimal.Decimal) error {
	return s.AdjustBalance(ctx, accountID, amount, DirectionDebit)
}

type CreateAccountRequest struct {
	WorkspaceId    ulid.ULID
	Name           string
	Bank           string
	InitialBalance decimal.Decimal
}
