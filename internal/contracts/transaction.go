package contracts

import (
	"time"

	"Cartera/internal/domain/transaction"

	"github.com/shopspring/decimal"
)

type TransactionCreateRequest struct {
	BankAccountID *string         `json:"bank_account_id" binding:"omitempty,len=26"`
	Type          string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description" binding:"omitempty,max=255"`
	Date          time.Time       `json:"date" binding:"required"`
}

type TransactionCreateResponse struct {
	Message     string                   `json:"message"`
	Transaction *transaction.Transaction `json:"transaction"`
}

type TransactionSingleResponse struct {
	Transaction *transaction.Transaction `json:"transaction"`
}
