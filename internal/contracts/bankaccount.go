package contracts

import (
	"Cartera/internal/domain/bankaccount"

	"github.com/shopspring/decimal"
)

type BankAccountCreateRequest struct {
	Name           string          `json:"name" binding:"required,max=100"`
	Bank           string          `json:"bank" binding:"omitempty,max=100"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

type BankAccountCreateResponse struct {
	Message     string                   `json:"message"`
	BankAccount *bankaccount.BankAccount `json:"bankAccount"`
}

type BankAccountSingleResponse struct {
	BankAccount *bankaccount.BankAccount `json:"bankAccount"`
}
