package fx

import (
	"Cartera/internal/domain/bankaccount"
	"Cartera/internal/domain/creditcard"
	"Cartera/internal/domain/summary"
	"Cartera/internal/domain/transaction"
	"Cartera/internal/domain/workspace"
	"Cartera/internal/infrastructure"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newWorkspaceService,
		newBankAccountService,
		newTransactionService,
		newSummaryService,
		newCreditCardService,
	),
)

func newWorkspaceService(repo *infrastructure.WorkspaceRepository) *workspace.Service {
	return workspace.NewService(repo)
}

func newBankAccountService(repo *infrastructure.BankAccountRepository) *bankaccount.Service {
	return bankaccount.NewService(repo)
}

func newTransactionService(repo *infrastructure.TransactionRepository) *transaction.Service {
	return transaction.NewService(repo)
}

func newSummaryService(repo *infrastructure.SummaryRepository) *summary.Service {
	return summary.NewService(repo)
}

func newCreditCardService(
	repo *infrastructure.CreditCardRepository,
	workspaceSvc *workspace.Service,
	accountSvc *bankaccount.Service,
	transactionSvc *transaction.Service,
	summarySvc *summary.Service,
) creditcard.Service {
	return creditcard.Service{
		Repository: repo,
		Workspaces: workspaceSvc,
		Accounts:   accountSvc,
		Ledger:     transactionSvc,
		Summaries:  summarySvc,
	}
}
