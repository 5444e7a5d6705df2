package creditcard

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Card guarda a configuração de corte e vencimento usada para projetar as
// parcelas e fechar as faturas. Os dias vão de 1 a 29 para que qualquer mês
// tenha uma data válida após o ajuste de fevereiro.
type Card struct {
	Id             ulid.ULID   `gorm:"type:varchar(26);primaryKey" json:"id"`
	WorkspaceId    ulid.ULID   `gorm:"type:varchar(26);index:idx_cards_workspace_id;not null" json:"workspaceId"`
	Name           string      `gorm:"type:varchar(100);not null" json:"name"`
	LastFourDigits string      `gorm:"type:varchar(4)" json:"lastFourDigits"`
	Issuer         string      `gorm:"type:varchar(100)" json:"issuer"`
	Network        CardNetwork `gorm:"type:varchar(20);not null" json:"network"`
	CutoffDay      int         `gorm:"not null;check:cutoff_day >= 1 AND cutoff_day <= 29;index:idx_cards_cutoff_day" json:"cutoffDay"`
	DueDay         int         `gorm:"not null;check:due_day >= 1 AND due_day <= 29" json:"dueDay"`
	CreatedAt      time.Time   `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt      time.Time   `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Card) TableName() string {
	return "cards"
}

type CardNetwork string

const (
	NetworkVisa       CardNetwork = "VISA"
	NetworkMastercard CardNetwork = "MASTERCARD"
	NetworkAmex       CardNetwork = "AMEX"
	NetworkOther      CardNetwork = "OTHER"
)

func (n CardNetwork) IsValid() bool {
	switch n {
	case NetworkVisa, NetworkMastercard, NetworkAmex, NetworkOther:
		return true
	}
	return false
}
