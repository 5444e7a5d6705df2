package creditcard

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Installment nasce sem fatura e sem transação; o fechamento de ciclo anexa a
// fatura e o pagamento marca como paga junto com a referência da transação.
type Installment struct {
	Id            ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	PurchaseId    ulid.ULID       `gorm:"type:varchar(26);index:idx_installments_purchase_id;not null" json:"purchaseId"`
	CardId        ulid.ULID       `gorm:"type:varchar(26);index:idx_installments_card_id;not null" json:"cardId"`
	Number        int             `gorm:"not null;check:number >= 1" json:"number"`
	DueDate       time.Time       `gorm:"type:date;not null;index:idx_installments_due_date" json:"dueDate"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Paid          bool            `gorm:"not null;default:false" json:"paid"`
	StatementId   *ulid.ULID      `gorm:"type:varchar(26);index:idx_installments_statement_id" json:"statementId"`
	TransactionId *ulid.ULID      `gorm:"type:varchar(26)" json:"transactionId"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Installment) TableName() string {
	return "installments"
}
