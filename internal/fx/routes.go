package fx

import (
	"Cartera/internal/domain/bankaccount"
	"Cartera/internal/domain/creditcard"
	"Cartera/internal/domain/summary"
	"Cartera/internal/domain/transaction"
	"Cartera/internal/domain/workspace"
	"Cartera/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece os handlers HTTP
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
	),
)

func newHandler(
	workspaceSvc *workspace.Service,
	accountSvc *bankaccount.Service,
	transactionSvc *transaction.Service,
	summarySvc *summary.Service,
	creditCardSvc creditcard.Service,
) *routes.Handler {
	return &routes.Handler{
		WorkspaceService:   *workspaceSvc,
		AccountService:     *accountSvc,
		TransactionService: *transactionSvc,
		SummaryService:     *summarySvc,
		CreditCardService:  creditCardSvc,
	}
}
