package infrastructure

import (
	"context"
	"errors"
	"time"

	"Cartera/internal/domain/summary"
	"Cartera/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SummaryRepository struct {
	DB *gorm.DB
}

type summaryDB struct {
	Id          string          `gorm:"type:varchar(26);primaryKey"`
	WorkspaceId string          `gorm:"type:varchar(26);uniqueIndex:idx_summaries_workspace_period;not null"`
	Year        int             `gorm:"uniqueIndex:idx_summaries_workspace_period;not null"`
	Month       int             `gorm:"uniqueIndex:idx_summaries_workspace_period;not null"`
	Income      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Expense     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

func (summaryDB) TableName() string {
	return "monthly_summaries"
}

func toDomainSummary(sdb *summaryDB) (*summary.MonthlySummary, error) {
	id, err := pkg.ParseULID(sdb.Id)
	if err != nil {
		return nil, err
	}
	wid, err := pkg.ParseULID(sdb.WorkspaceId)
	if err != nil {
		return nil, err
	}

	return &summary.MonthlySummary{
		Id:          id,
		WorkspaceId: wid,
		Year:        sdb.Year,
		Month:       sdb.Month,
		Income:      sdb.Income,
		Expense:     sdb.Expense,
		CreatedAt:   sdb.CreatedAt,
		UpdatedAt:   sdb.UpdatedAt,
	}, nil
}

func (r *SummaryRepository) AddToPeriod(ctx context.Context, workspaceID ulid.ULID, year, month int, income, expense decimal.Decimal) error {
	now := time.Now()
	row := summaryDB{
		Id:          pkg.GenerateULID(),
		WorkspaceId: workspaceID.String(),
		Year:        year,
		Month:       month,
		Income:      income,
		Expense:     expense,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "workspace_id"}, {Name: "year"}, {Name: "month"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"income":     gorm.Expr("monthly_summaries.income + ?", income),
			"expense":    gorm.Expr("monthly_summaries.expense + ?", expense),
			"updated_at": now,
		}),
	}).Create(&row).Error
}

func (r *SummaryRepository) GetByPeriod(ctx context.Context, workspaceID ulid.ULID, year, month int) (*summary.MonthlySummary, error) {
	var sdb summaryDB
	err := r.DB.WithContext(ctx).
		Where("workspace_id = ? AND year = ? AND month = ?", workspaceID.String(), year, month).
		First(&sdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainSummary(&sdb)
}
