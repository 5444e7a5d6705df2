package fx

import (
	"Cartera/config"
	"Cartera/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newWorkspaceRepository,
		newBankAccountRepository,
		newTransactionRepository,
		newSummaryRepository,
		newCreditCardRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newWorkspaceRepository(db *gorm.DB) *infrastructure.WorkspaceRepository {
	return &infrastructure.WorkspaceRepository{DB: db}
}

func newBankAccountRepository(db *gorm.DB) *infrastructure.BankAccountRepository {
	return &infrastructure.BankAccountRepository{DB: db}
}

func newTransactionRepository(db *gorm.DB) *infrastructure.TransactionRepository {
	return &infrastructure.TransactionRepository{DB: db}
}

func newSummaryRepository(db *gorm.DB) *infrastructure.SummaryRepository {
	return &infrastructure.SummaryRepository{DB: db}
}

func newCreditCardRepository(db *gorm.DB) *infrastructure.CreditCardRepository {
	return &infrastructure.CreditCardRepository{DB: db}
}
