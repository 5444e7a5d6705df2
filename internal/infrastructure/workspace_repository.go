package infrastructure

import (
	"context"
	"time"

	"Cartera/internal/domain/workspace"
	"Cartera/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WorkspaceRepository struct {
	DB *gorm.DB
}

type workspaceDB struct {
	Id        string          `gorm:"type:varchar(26);primaryKey"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Shared    bool            `gorm:"not null;default:false"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

func (workspaceDB) TableName() string {
	return "workspaces"
}

func toDomainWorkspace(wdb *workspaceDB) (*workspace.Workspace, error) {
	id, err := pkg.ParseULID(wdb.Id)
	if err != nil {
		return nil, err
	}

	return &workspace.Workspace{
		Id:        id,
		Name:      wdb.Name,
		Balance:   wdb.Balance,
		Shared:    wdb.Shared,
		CreatedAt: wdb.CreatedAt,
		UpdatedAt: wdb.UpdatedAt,
	}, nil
}

func toDBWorkspace(ws *workspace.Workspace) *workspaceDB {
	return &workspaceDB{
		Id:        ws.Id.String(),
		Name:      ws.Name,
		Balance:   ws.Balance,
		Shared:    ws.Shared,
		CreatedAt: ws.CreatedAt,
		UpdatedAt: ws.UpdatedAt,
	}
}

func (r *WorkspaceRepository) Create(ctx context.Context, ws *workspace.Workspace) error {
	wdb := toDBWorkspace(ws)
	return r.DB.WithContext(ctx).Table("workspaces").Create(wdb).Error
}

func (r *WorkspaceRepository) GetById(ctx context.Context, workspaceID ulid.ULID) (*workspace.Workspace, error) {
	var wdb workspaceDB
	err := r.DB.WithContext(ctx).Where("id = ?", workspaceID.String()).First(&wdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainWorkspace(&wdb)
}

func (r *WorkspaceRepository) AdjustBalance(ctx context.Context, workspaceID ulid.ULID, delta decimal.Decimal) error {
	return r.DB.WithContext(ctx).Model(&workspaceDB{}).
		Where("id = ?", workspaceID.String()).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now(),
		}).Error
}
