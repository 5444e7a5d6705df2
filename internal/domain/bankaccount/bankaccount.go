package bankaccount

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type BankAccount struct {
	Id          ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	WorkspaceId ulid.ULID       `gorm:"type:varchar(26);index:idx_bank_accounts_workspace_id;not null" json:"workspaceId"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Bank        string          `gorm:"type:varchar(100)" json:"bank"`
	Balance     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (BankAccount) TableName() string {
	return "bank_accounts"
}

type Direction string

const (
	DirectionCredit Direction = "CREDIT"
	DirectionDebit  Direction = "DEBIT"
)

func (d Direction) IsValid() bool {
	switch d {
	case DirectionCredit, DirectionDebit:
		return true
	}
	return false
}
