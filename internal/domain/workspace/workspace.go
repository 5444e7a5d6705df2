package workspace

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Workspace struct {
	Id        ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	Shared    bool            `gorm:"not null;default:false" json:"shared"`
	CreatedAt time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Workspace) TableName() string {
	return "workspaces"
}
