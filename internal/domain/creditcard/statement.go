package creditcard

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Statement é a fatura fechada de um cartão para um período. Existe no máximo
// uma por (cartão, ano, mês).
type Statement struct {
	Id            ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	CardId        ulid.ULID       `gorm:"type:varchar(26);uniqueIndex:idx_statements_card_period;not null" json:"cardId"`
	WorkspaceId   ulid.ULID       `gorm:"type:varchar(26);index:idx_statements_workspace_id;not null" json:"workspaceId"`
	Year          int             `gorm:"uniqueIndex:idx_statements_card_period;not null" json:"year"`
	Month         int             `gorm:"uniqueIndex:idx_statements_card_period;not null;check:month >= 1 AND month <= 12" json:"month"`
	DueDate       time.Time       `gorm:"type:date;not null;index:idx_statements_due_date" json:"dueDate"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"totalAmount"`
	Status        StatementStatus `gorm:"type:varchar(20);not null;default:'CLOSED'" json:"status"`
	TransactionId *ulid.ULID      `gorm:"type:varchar(26)" json:"transactionId"`
	PaidAt        *time.Time      `gorm:"type:timestamp" json:"paidAt"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Statement) TableName() string {
	return "statements"
}

type StatementStatus string

const (
	StatementClosed StatementStatus = "CLOSED"
	StatementPaid   StatementStatus = "PAID"
)

func (s StatementStatus) IsValid() bool {
	switch s {
	case StatementClosed, StatementPaid:
		return true
	}
	return false
}
