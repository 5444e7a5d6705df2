package summary

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// MonthlySummary acumula receitas e despesas por (workspace, ano, mês) para
// que os painéis não precisem varrer a tabela de transações.
type MonthlySummary struct {
	Id          ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	WorkspaceId ulid.ULID       `gorm:"type:varchar(26);uniqueIndex:idx_summaries_workspace_period;not null" json:"workspaceId"`
	Year        int             `gorm:"uniqueIndex:idx_summaries_workspace_period;not null" json:"year"`
	Month       int             `gorm:"uniqueIndex:idx_summaries_workspace_period;not null;check:month >= 1 AND month <= 12" json:"month"`
	Income      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"income"`
	Expense     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"expense"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (MonthlySummary) TableName() string {
	return "monthly_summaries"
}
