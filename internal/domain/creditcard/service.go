package creditcard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Cartera/internal/domain/transaction"
	appErrors "Cartera/internal/errors"
	"Cartera/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Service struct {
	Repository Repository
	Workspaces WorkspaceLedger
	Accounts   AccountLedger
	Ledger     TransactionLedger
	Summaries  SummaryRecorder
}

func (s *Service) CreateCard(ctx context.Context, req *CreateCardRequest) (*Card, error) {
	if err := validateCreateCardRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	card := &Card{
		Id:             pkg.GenerateULIDObject(),
		WorkspaceId:    req.WorkspaceId,
		Name:           strings.TrimSpace(req.Name),
		LastFourDigits: req.LastFourDigits,
		Issuer:         strings.TrimSpace(req.Issuer),
		Network:        req.Network,
		CutoffDay:      req.CutoffDay,
		DueDay:         req.DueDay,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Repository.CreateCard(ctx, card); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return card, nil
}

// UpdateCard altera a configuração do cartão. Mudar o dia de corte ou de
// vencimento vale só para compras futuras; parcelas já geradas mantêm as
// datas projetadas na época da compra.
func (s *Service) UpdateCard(ctx context.Context, cardID ulid.ULID, req *UpdateCardRequest) error {
	card, err := s.GetCardById(ctx, cardID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return appErrors.NewValidationError("name", "nao pode ser vazio")
		}
		card.Name = name
	}

	if req.CutoffDay != nil {
		if *req.CutoffDay < 1 || *req.CutoffDay > 29 {
			return appErrors.NewValidationError("cutoff_day", "deve estar entre 1 e 29")
		}
		card.CutoffDay = *req.CutoffDay
	}

	if req.DueDay != nil {
		if *req.DueDay < 1 || *req.DueDay > 29 {
			return appErrors.NewValidationError("due_day", "deve estar entre 1 e 29")
		}
		card.DueDay = *req.DueDay
	}

	if req.Network != nil {
		if !req.Network.IsValid() {
			return appErrors.NewValidationError("network", "bandeira invalida")
		}
		card.Network = *req.Network
	}

	if req.Issuer != nil {
		card.Issuer = strings.TrimSpace(*req.Issuer)
	}

	if req.LastFourDigits != nil {
		card.LastFourDigits = *req.LastFourDigits
	}

	card.UpdatedAt = time.Now()

	if err := s.Repository.UpdateCard(ctx, card); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetCardById(ctx context.Context, cardID ulid.ULID) (*Card, error) {
	card, err := s.Repository.GetCardById(ctx, cardID)
	if err != nil {
		return nil, appErrors.ErrCardNotFound.WithError(err)
	}
	return card, nil
}

func (s *Service) ListCards(ctx context.Context, workspaceID ulid.ULID, pagination *pkg.PaginationParams) ([]*Card, int64, error) {
	return s.Repository.GetCardsByWorkspaceId(ctx, workspaceID, pagination)
}

// RegisterPurchase grava a compra e gera as parcelas de forma síncrona. O
// efeito no saldo do workspace, se existir, é responsabilidade do chamador.
func (s *Service) RegisterPurchase(ctx context.Context, req *RegisterPurchaseRequest) (*CreditPurchase, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, appErrors.NewValidationError("amount", "deve ser maior que zero")
	}
	if req.InstallmentCount < 0 {
		return nil, appErrors.NewValidationError("installment_count", "deve ser maior ou igual a zero")
	}
	if req.PurchaseDate.IsZero() {
		return nil, appErrors.NewValidationError("purchase_date", "e obrigatoria")
	}

	card, err := s.GetCardById(ctx, req.CardId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	purchase := &CreditPurchase{
		Id:               pkg.GenerateULIDObject(),
		CardId:           card.Id,
		WorkspaceId:      card.WorkspaceId,
		Amount:           req.Amount,
		PurchaseDate:     DateOnly(req.PurchaseDate),
		InstallmentCount: req.InstallmentCount,
		PaidInstallments: 0,
		Reason:           strings.TrimSpace(req.Reason),
		Counterparty:     req.Counterparty,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.Repository.CreatePurchase(ctx, purchase); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	installments := GenerateInstallments(purchase, card)
	if len(installments) > 0 {
		if err := s.Repository.CreateInstallments(ctx, installments); err != nil {
			return nil, appErrors.NewDatabaseError(err)
		}
	}

	return purchase, nil
}

// DeletePurchase remove a compra e suas parcelas. Só é permitido enquanto
// nenhuma parcela foi paga.
func (s *Service) DeletePurchase(ctx context.Context, purchaseID ulid.ULID) error {
	purchase, err := s.Repository.GetPurchaseById(ctx, purchaseID)
	if err != nil {
		return appErrors.ErrPurchaseNotFound.WithError(err)
	}

	if purchase.PaidInstallments > 0 {
		return appErrors.NewInvalidStateError("compra possui parcelas pagas, nao pode remover")
	}

	if err := s.Repository.DeletePurchase(ctx, purchaseID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) ListPurchases(ctx context.Context, cardID ulid.ULID, pagination *pkg.PaginationParams) ([]*CreditPurchase, int64, error) {
	if _, err := s.GetCardById(ctx, cardID); err != nil {
		return nil, 0, err
	}
	return s.Repository.GetPurchasesByCardId(ctx, cardID, pagination)
}

func (s *Service) ListInstallments(ctx context.Context, purchaseID ulid.ULID) ([]*Installment, error) {
	if _, err := s.Repository.GetPurchaseById(ctx, purchaseID); err != nil {
		return nil, appErrors.ErrPurchaseNotFound.WithError(err)
	}
	return s.Repository.GetInstallmentsByPurchaseId(ctx, purchaseID)
}

func (s *Service) ListStatements(ctx context.Context, cardID ulid.ULID, pagination *pkg.PaginationParams) ([]*Statement, int64, error) {
	if _, err := s.GetCardById(ctx, cardID); err != nil {
		return nil, 0, err
	}
	return s.Repository.GetStatementsByCardId(ctx, cardID, pagination)
}

func (s *Service) GetStatementById(ctx context.Context, statementID ulid.ULID) (*Statement, error) {
	statement, err := s.Repository.GetStatementById(ctx, statementID)
	if err != nil {
		return nil, appErrors.ErrStatementNotFound.WithError(err)
	}
	return statement, nil
}

// PayStatement liquida uma fatura fechada. O pagamento é tudo-ou-nada: o
// valor informado precisa bater exatamente com o total da fatura. Debita a
// conta bancária indicada (quando houver), debita o saldo do workspace,
// registra a transação no extrato e propaga o pago para parcelas e compras.
func (s *Service) PayStatement(ctx context.Context, req *PayStatementRequest) error {
	statement, err := s.GetStatementById(ctx, req.StatementId)
	if err != nil {
		return err
	}

	if statement.Status != StatementClosed {
		return appErrors.NewInvalidStateError("fatura ja foi paga")
	}

	if !req.Amount.Equal(statement.TotalAmount) {
		return appErrors.NewValidationError("amount", "valor nao corresponde ao total da fatura").
			WithDetails(map[string]interface{}{
				"expected": statement.TotalAmount.String(),
				"received": req.Amount.String(),
			})
	}

	if req.BankAccountId != nil {
		if err := s.Accounts.Debit(ctx, *req.BankAccountId, req.Amount); err != nil {
			return err
		}
	}

	if err := s.Workspaces.Debit(ctx, statement.WorkspaceId, req.Amount); err != nil {
		return err
	}

	ledgerTx, err := s.Ledger.CreateTransaction(ctx, &transaction.CreateTransactionRequest{
		WorkspaceId:   statement.WorkspaceId,
		BankAccountId: req.BankAccountId,
		Type:          transaction.TypeExpense,
		Amount:        req.Amount,
		Description:   fmt.Sprintf("Pagamento fatura %02d/%d", statement.Month, statement.Year),
		Date:          time.Now(),
	})
	if err != nil {
		return err
	}

	if err := s.Repository.SettleStatement(ctx, statement.Id, ledgerTx.Id, time.Now()); err != nil {
		if appErrors.IsAppError(err) {
			return err
		}
		return appErrors.NewDatabaseError(err)
	}

	if err := s.Summaries.RecordExpense(ctx, statement.WorkspaceId, statement.Year, statement.Month, req.Amount); err != nil {
		return err
	}

	return nil
}

func validateCreateCardRequest(req *CreateCardRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return appErrors.NewValidationError("name", "e obrigatorio")
	}
	if req.CutoffDay < 1 || req.CutoffDay > 29 {
		return appErrors.NewValidationError("cutoff_day", "deve estar entre 1 e 29")
	}
	if req.DueDay < 1 || req.DueDay > 29 {
		return appErrors.NewValidationError("due_day", "deve estar entre 1 e 29")
	}
	if !req.Network.IsValid() {
		return appErrors.NewValidationError("network", "bandeira invalida")
	}
	if len(req.LastFourDigits) > 4 {
		return appErrors.NewValidationError("last_four_digits", "deve ter no maximo 4 digitos")
	}
	return nil
}

type CreateCardRequest struct {
	WorkspaceId    ulid.ULID
	Name           string
	LastFourDigits string
	Issuer         string
	Network        CardNetwork
	CutoffDay      int
	DueDay         int
}

type UpdateCardRequest struct {
	Name           *string
	LastFourDigits *string
	Issuer         *string
	Network        *CardNetwork
	CutoffDay      *int
	DueDay         *int
}

type RegisterPurchaseRequest struct {
	CardId           ulid.ULID
	Amount           decimal.Decimal
	PurchaseDate     time.Time
	InstallmentCount int
	Reason           string
	Counterparty     *string
}

type PayStatementRequest struct {
	StatementId   ulid.ULID
	Amount        decimal.Decimal
	BankAccountId *ulid.ULID
}
