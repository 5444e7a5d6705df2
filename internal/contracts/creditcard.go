package contracts

import (
	"time"

	"Cartera/internal/domain/creditcard"
	"Cartera/internal/domain/summary"

	"github.com/shopspring/decimal"
)

type CardCreateRequest struct {
	WorkspaceID    string `json:"workspace_id" binding:"required,len=26"`
	Name           string `json:"name" binding:"required,max=100"`
	LastFourDigits string `json:"last_four_digits" binding:"omitempty,max=4"`
	Issuer         string `json:"issuer" binding:"omitempty,max=100"`
	Network        string `json:"network" binding:"required,oneof=VISA MASTERCARD AMEX OTHER"`
	CutoffDay      int    `json:"cutoff_day" binding:"required,min=1,max=29"`
	DueDay         int    `json:"due_day" binding:"required,min=1,max=29"`
}

type CardUpdateRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=100"`
	LastFourDigits *string `json:"last_four_digits" binding:"omitempty,max=4"`
	Issuer         *string `json:"issuer" binding:"omitempty,max=100"`
	Network        *string `json:"network" binding:"omitempty,oneof=VISA MASTERCARD AMEX OTHER"`
	CutoffDay      *int    `json:"cutoff_day" binding:"omitempty,min=1,max=29"`
	DueDay         *int    `json:"due_day" binding:"omitempty,min=1,max=29"`
}

type PurchaseCreateRequest struct {
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	PurchaseDate     time.Time       `json:"purchase_date" binding:"required"`
	InstallmentCount int             `json:"installment_count" binding:"omitempty,min=0"`
	Reason           string          `json:"reason" binding:"omitempty,max=255"`
	Counterparty     *string         `json:"counterparty" binding:"omitempty,max=100"`
}

type StatementPayRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	BankAccountID *string         `json:"bank_account_id" binding:"omitempty,len=26"`
}

type CardCreateResponse struct {
	Message string           `json:"message"`
	Card    *creditcard.Card `json:"card"`
}

type CardSingleResponse struct {
	Card *creditcard.Card `json:"card"`
}

type PurchaseCreateResponse struct {
	Message  string                     `json:"message"`
	Purchase *creditcard.CreditPurchase `json:"purchase"`
}

type InstallmentListResponse struct {
	Installments []*creditcard.Installment `json:"installments"`
	Total        int                       `json:"total"`
}

type StatementSingleResponse struct {
	Statement *creditcard.Statement `json:"statement"`
}

type SummarySingleResponse struct {
	Summary *summary.MonthlySummary `json:"summary"`
}
