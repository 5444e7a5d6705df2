package creditcard

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// CreditPurchase é uma compra parcelada. PaidInstallments só é incrementado
// pelo pagamento de fatura e nunca passa de InstallmentCount.
type CreditPurchase struct {
	Id               ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	CardId           ulid.ULID       `gorm:"type:varchar(26);index:idx_purchases_card_id;not null" json:"cardId"`
	WorkspaceId      ulid.ULID       `gorm:"type:varchar(26);index:idx_purchases_workspace_id;not null" json:"workspaceId"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	PurchaseDate     time.Time       `gorm:"type:date;not null" json:"purchaseDate"`
	InstallmentCount int             `gorm:"not null;default:0;check:installment_count >= 0" json:"installmentCount"`
	PaidInstallments int             `gorm:"not null;default:0;check:paid_installments >= 0" json:"paidInstallments"`
	Reason           string          `gorm:"type:varchar(255)" json:"reason"`
	Counterparty     *string         `gorm:"type:varchar(100)" json:"counterparty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (CreditPurchase) TableName() string {
	return "credit_purchases"
}
