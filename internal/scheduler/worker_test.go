package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"Cartera/internal/domain/creditcard"
	"Cartera/internal/pkg"
	"Cartera/internal/scheduler"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type fakeRepository struct {
	getCardsByCutoffDayFn           func(ctx context.Context, day int) ([]*creditcard.Card, error)
	getStatementByPeriodFn          func(ctx context.Context, cardID ulid.ULID, year, month int) (*creditcard.Statement, error)
	getOpenInstallmentsDueBetweenFn func(ctx context.Context, cardID ulid.ULID, from, to time.Time) ([]*creditcard.Installment, error)
	createStatementFn               func(ctx context.Context, statement *creditcard.Statement, installmentIDs []ulid.ULID) error
}

func (f *fakeRepository) CreateCard(ctx context.Context, card *creditcard.Card) error { return nil }
func (f *fakeRepository) UpdateCard(ctx context.Context, card *creditcard.Card) error { return nil }
func (f *fakeRepository) GetCardById(ctx context.Context, cardID ulid.ULID) (*creditcard.Card, error) {
	return nil, errors.New("not found")
}
func (f *fakeRepository) GetCardsByWorkspaceId(ctx context.Context, workspaceID ulid.ULID, pagination *pkg.PaginationParams) ([]*creditcard.Card, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepository) GetCardsByCutoffDay(ctx context.Context, day int) ([]*creditcard.Card, error) {
	if f.getCardsByCutoffDayFn != nil {
		return f.getCardsByCutoffDayFn(ctx, day)
	}
	return nil, nil
}

func (f *fakeRepository) CreatePurchase(ctx context.Context, purchase *creditcard.CreditPurchase) error {
	return nil
}
func (f *fakeRepository) DeletePurchase(ctx context.Context, purchaseID ulid.ULID) error { return nil }
func (f *fakeRepository) GetPurchaseById(ctx context.Context, purchaseID ulid.ULID) (*creditcard.CreditPurchase, error) {
	return nil, errors.New("not found")
}
func (f *fakeRepository) GetPurchasesByCardId(ctx context.Context, cardID ulid.ULID, pagination *pkg.PaginationParams) ([]*creditcard.CreditPurchase, int64, error) {
	return nil, 0, nil
}
func (f *fakeRepository) CreateInstallments(ctx context.Context, installments []*creditcard.Installment) error {
	return nil
}
func (f *fakeRepository) GetInstallmentsByPurchaseId(ctx context.Context, purchaseID ulid.ULID) ([]*creditcard.Installment, error) {
	return nil, nil
}
func (f *fakeRepository) GetInstallmentsByStatementId(ctx context.Context, statementID ulid.ULID) ([]*creditcard.Installment, error) {
	return nil, nil
}

func (f *fakeRepository) GetOpenInstallmentsDueBetween(ctx context.Context, cardID ulid.ULID, from, to time.Time) ([]*creditcard.Installment, error) {
	if f.getOpenInstallmentsDueBetweenFn != nil {
		return f.getOpenInstallmentsDueBetweenFn(ctx, cardID, from, to)
	}
	return nil, nil
}

func (f *fakeRepository) GetStatementById(ctx context.Context, statementID ulid.ULID) (*creditcard.Statement, error) {
	return nil, errors.New("not found")
}

func (f *fakeRepository) GetStatementByPeriod(ctx context.Context, cardID ulid.ULID, year, month int) (*creditcard.Statement, error) {
	if f.getStatementByPeriodFn != nil {
		return f.getStatementByPeriodFn(ctx, cardID, year, month)
	}
	return nil, nil
}

func (f *fakeRepository) GetStatementsByCardId(ctx context.Context, cardID ulid.ULID, pagination *pkg.PaginationParams) ([]*creditcard.Statement, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepository) CreateStatementWithInstallments(ctx context.Context, statement *creditcard.Statement, installmentIDs []ulid.ULID) error {
	if f.createStatementFn != nil {
		return f.createStatementFn(ctx, statement, installmentIDs)
	}
	return nil
}

func (f *fakeRepository) SettleStatement(ctx context.Context, statementID, transactionID ulid.ULID, paidAt time.Time) error {
	return nil
}

func newCard(cutoffDay, dueDay int) *creditcard.Card {
	return &creditcard.Card{
		Id:          pkg.GenerateULIDObject(),
		WorkspaceId: pkg.GenerateULIDObject(),
		Name:        "Cartao",
		Network:     creditcard.NetworkVisa,
		CutoffDay:   cutoffDay,
		DueDay:      dueDay,
	}
}

func newInstallment(cardID ulid.ULID, amount string, dueDate time.Time) *creditcard.Installment {
	return &creditcard.Installment{
		Id:         pkg.GenerateULIDObject(),
		PurchaseId: pkg.GenerateULIDObject(),
		CardId:     cardID,
		Number:     1,
		DueDate:    dueDate,
		Amount:     decimal.RequireFromString(amount),
	}
}

func TestCloseCardCreatesStatementWithTotals(t *testing.T) {
	card := newCard(25, 5)
	closingDate := time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)

	first := newInstallment(card.Id, "100.00", time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC))
	second := newInstallment(card.Id, "33.34", time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC))

	var created *creditcard.Statement
	var attachedIDs []ulid.ULID
	var queriedFrom, queriedTo time.Time

	repo := &fakeRepository{
		getOpenInstallmentsDueBetweenFn: func(ctx context.Context, cardID ulid.ULID, from, to time.Time) ([]*creditcard.Installment, error) {
			queriedFrom, queriedTo = from, to
			return []*creditcard.Installment{first, second}, nil
		},
		createStatementFn: func(ctx context.Context, statement *creditcard.Statement, installmentIDs []ulid.ULID) error {
			created = statement
			attachedIDs = installmentIDs
			return nil
		},
	}

	worker := scheduler.NewWorker(repo, scheduler.DefaultConfig())
	if err := worker.CloseCard(context.Background(), card, closingDate); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if created == nil {
		t.Fatal("fatura nao foi criada")
	}
	if created.Year != 2024 || created.Month != 1 {
		t.Errorf("esperava periodo 2024-01, obteve %d-%02d", created.Year, created.Month)
	}
	if !created.TotalAmount.Equal(decimal.RequireFromString("133.34")) {
		t.Errorf("esperava total 133.34, obteve %s", created.TotalAmount)
	}
	if created.Status != creditcard.StatementClosed {
		t.Errorf("fatura recem fechada deveria ser CLOSED, obteve %s", created.Status)
	}

	wantDue := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)
	if !created.DueDate.Equal(wantDue) {
		t.Errorf("esperava vencimento %v, obteve %v", wantDue, created.DueDate)
	}

	wantFrom := time.Date(2024, time.January, 26, 0, 0, 0, 0, time.UTC)
	if !queriedFrom.Equal(wantFrom) {
		t.Errorf("janela deveria comecar em %v, obteve %v", wantFrom, queriedFrom)
	}
	if !queriedTo.Equal(wantDue) {
		t.Errorf("janela deveria terminar em %v, obteve %v", wantDue, queriedTo)
	}

	if len(attachedIDs) != 2 {
		t.Fatalf("esperava 2 parcelas anexadas, obteve %d", len(attachedIDs))
	}
	if attachedIDs[0] != first.Id || attachedIDs[1] != second.Id {
		t.Errorf("parcelas anexadas incorretas")
	}
}

func TestCloseCardIsIdempotentPerPeriod(t *testing.T) {
	card := newCard(25, 5)
	closingDate := time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)
	createCalled := false

	repo := &fakeRepository{
		getStatementByPeriodFn: func(ctx context.Context, cardID ulid.ULID, year, month int) (*creditcard.Statement, error) {
			return &creditcard.Statement{Id: pkg.GenerateULIDObject(), CardId: cardID, Year: year, Month: month}, nil
		},
		createStatementFn: func(ctx context.Context, statement *creditcard.Statement, installmentIDs []ulid.ULID) error {
			createCalled = true
			return nil
		},
	}

	worker := scheduler.NewWorker(repo, scheduler.DefaultConfig())
	if err := worker.CloseCard(context.Background(), card, closingDate); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if createCalled {
		t.Fatal("fechamento repetido nao deveria criar outra fatura")
	}
}

func TestCloseCardSkipsPeriodWithoutInstallments(t *testing.T) {
	card := newCard(25, 5)
	closingDate := time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)
	createCalled := false

	repo := &fakeRepository{
		createStatementFn: func(ctx context.Context, statement *creditcard.Statement, installmentIDs []ulid.ULID) error {
			createCalled = true
			return nil
		},
	}

	worker := scheduler.NewWorker(repo, scheduler.DefaultConfig())
	if err := worker.CloseCard(context.Background(), card, closingDate); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if createCalled {
		t.Fatal("periodo sem parcelas nao deveria gerar fatura")
	}
}

func TestCloseDayIsolatesPerCardFailures(t *testing.T) {
	closingDate := time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)
	broken := newCard(25, 5)
	healthy := newCard(25, 5)
	closedCards := make(map[ulid.ULID]bool)

	repo := &fakeRepository{
		getCardsByCutoffDayFn: func(ctx context.Context, day int) ([]*creditcard.Card, error) {
			return []*creditcard.Card{broken, healthy}, nil
		},
		getOpenInstallmentsDueBetweenFn: func(ctx context.Context, cardID ulid.ULID, from, to time.Time) ([]*creditcard.Installment, error) {
			if cardID == broken.Id {
				return nil, errors.New("db down")
			}
			return []*creditcard.Installment{newInstallment(cardID, "42.00", to)}, nil
		},
		createStatementFn: func(ctx context.Context, statement *creditcard.Statement, installmentIDs []ulid.ULID) error {
			closedCards[statement.CardId] = true
			return nil
		},
	}

	worker := scheduler.NewWorker(repo, scheduler.DefaultConfig())
	if err := worker.CloseDay(context.Background(), closingDate); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if closedCards[broken.Id] {
		t.Error("cartao com falha nao deveria ter fatura")
	}
	if !closedCards[healthy.Id] {
		t.Error("falha de um cartao nao deveria impedir o fechamento dos demais")
	}
}

func TestCloseDayDecemberRollsDueDateIntoNextYear(t *testing.T) {
	card := newCard(25, 5)
	closingDate := time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC)

	var created *creditcard.Statement
	repo := &fakeRepository{
		getOpenInstallmentsDueBetweenFn: func(ctx context.Context, cardID ulid.ULID, from, to time.Time) ([]*creditcard.Installment, error) {
			return []*creditcard.Installment{newInstallment(cardID, "10.00", to)}, nil
		},
		createStatementFn: func(ctx context.Context, statement *creditcard.Statement, installmentIDs []ulid.ULID) error {
			created = statement
			return nil
		},
	}

	worker := scheduler.NewWorker(repo, scheduler.DefaultConfig())
	if err := worker.CloseCard(context.Background(), card, closingDate); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if created == nil {
		t.Fatal("fatura nao foi criada")
	}
	if created.Year != 2024 || created.Month != 12 {
		t.Errorf("fatura pertence ao periodo do fechamento, obteve %d-%02d", created.Year, created.Month)
	}
	want := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	if !created.DueDate.Equal(want) {
		t.Errorf("esperava vencimento %v, obteve %v", want, created.DueDate)
	}
}
