package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Transaction struct {
	Id            ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	WorkspaceId   ulid.ULID       `gorm:"type:varchar(26);index:idx_transactions_workspace_id;not null" json:"workspaceId"`
	BankAccountId *ulid.ULID      `gorm:"type:varchar(26);index:idx_transactions_bank_account_id" json:"bankAccountId"`
	Type          Type            `gorm:"type:varchar(15);not null" json:"type"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description   string          `gorm:"type:varchar(255)" json:"description"`
	Date          time.Time       `gorm:"type:date;not null;index:idx_transactions_date" json:"date"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Transaction) TableName() string {
	return "transactions"
}

type Type string

const (
	TypeIncome  Type = "INCOME"
	TypeExpense Type = "EXPENSE"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeIncome, TypeExpense:
		return true
	}
	return false
}
