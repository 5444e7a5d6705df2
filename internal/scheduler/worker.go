package scheduler

import (
	"context"
	"time"

	"Cartera/internal/domain/creditcard"
	"Cartera/internal/logger"
	"Cartera/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Worker fecha as faturas dos cartões cujo dia de corte coincide com o dia
// sendo processado. Processa sempre o dia ANTERIOR, garantindo que todas as
// compras daquele dia já estejam registradas. Cada cartão é fechado em sua
// própria transação; a falha de um não interrompe os demais. Reexecutar o
// fechamento é seguro: a existência da fatura por (cartão, ano, mês) serve de
// guarda de idempotência.
type Worker struct {
	repo creditcard.Repository
	cfg  Config
	now  func() time.Time
}

func NewWorker(repo creditcard.Repository, cfg Config) *Worker {
	return &Worker{
		repo: repo,
		cfg:  cfg.withDefaults(),
		now:  time.Now,
	}
}

func (w *Worker) RunForever(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if err := w.RunOnce(ctx); err != nil {
			logger.Warn().Err(err).Msg("Fechamento de faturas falhou")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce fecha o dia anterior ao atual.
func (w *Worker) RunOnce(ctx context.Context) error {
	closingDate := creditcard.DateOnly(w.now().AddDate(0, 0, -1))
	return w.CloseDay(ctx, closingDate)
}

// CloseDay processa todos os cartões com corte no dia informado.
func (w *Worker) CloseDay(ctx context.Context, closingDate time.Time) error {
	cards, err := w.repo.GetCardsByCutoffDay(ctx, closingDate.Day())
	if err != nil {
		return err
	}

	logger.Info().
		Str("closing_date", closingDate.Format("2006-01-02")).
		Int("cards", len(cards)).
		Msg("Iniciando fechamento de faturas")

	for _, card := range cards {
		if err := w.CloseCard(ctx, card, closingDate); err != nil {
			logger.Error().
				Err(err).
				Str("card_id", card.Id.String()).
				Str("closing_date", closingDate.Format("2006-01-02")).
				Msg("Erro ao fechar fatura do cartao")
		}
	}

	return nil
}

// CloseCard fecha a fatura de um cartão para a data de corte informada. Junta
// as parcelas sem fatura com vencimento na janela (corte+1 dia, vencimento
// projetado no mês seguinte) e grava a fatura CLOSED com o total delas. Sem
// parcelas elegíveis, o período simplesmente não tem fatura.
func (w *Worker) CloseCard(ctx context.Context, card *creditcard.Card, closingDate time.Time) error {
	year := closingDate.Year()
	month := int(closingDate.Month())

	existing, err := w.repo.GetStatementByPeriod(ctx, card.Id, year, month)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.Debug().
			Str("card_id", card.Id.String()).
			Int("year", year).
			Int("month", month).
			Msg("Fatura do periodo ja existe, fechamento ignorado")
		return nil
	}

	windowStart := closingDate.AddDate(0, 0, 1)
	windowEnd := creditcard.ProjectDueDate(closingDate, 1, card.DueDay)

	installments, err := w.repo.GetOpenInstallmentsDueBetween(ctx, card.Id, windowStart, windowEnd)
	if err != nil {
		return err
	}
	if len(installments) == 0 {
		return nil
	}

	total := decimal.Zero
	installmentIDs := make([]ulid.ULID, 0, len(installments))
	for _, installment := range installments {
		total = total.Add(installment.Amount)
		installmentIDs = append(installmentIDs, installment.Id)
	}

	now := w.now()
	statement := &creditcard.Statement{
		Id:          pkg.GenerateULIDObject(),
		CardId:      card.Id,
		WorkspaceId: card.WorkspaceId,
		Year:        year,
		Month:       month,
		DueDate:     windowEnd,
		TotalAmount: total,
		Status:      creditcard.StatementClosed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := w.repo.CreateStatementWithInstallments(ctx, statement, installmentIDs); err != nil {
		return err
	}

	logger.Info().
		Str("card_id", card.Id.String()).
		Str("statement_id", statement.Id.String()).
		Int("installments", len(installmentIDs)).
		Str("total", total.String()).
		Msg("Fatura fechada")

	return nil
}
