package infrastructure

import (
	"context"
	"time"

	"Cartera/internal/domain/transaction"
	"Cartera/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

type transactionDB struct {
	Id            string          `gorm:"type:varchar(26);primaryKey"`
	WorkspaceId   string          `gorm:"type:varchar(26);index;not null"`
	BankAccountId *string         `gorm:"type:varchar(26);index"`
	Type          string          `gorm:"type:varchar(15);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description   string          `gorm:"type:varchar(255)"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

func (transactionDB) TableName() string {
	return "transactions"
}

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, err
	}
	wid, err := pkg.ParseULID(tdb.WorkspaceId)
	if err != nil {
		return nil, err
	}
	aid, err := pkg.ParseULIDPtr(tdb.BankAccountId)
	if err != nil {
		return nil, err
	}

	return &transaction.Transaction{
		Id:            id,
		WorkspaceId:   wid,
		BankAccountId: aid,
		Type:          transaction.Type(tdb.Type),
		Amount:        tdb.Amount,
		Description:   tdb.Description,
		Date:          tdb.Date,
		CreatedAt:     tdb.CreatedAt,
		UpdatedAt:     tdb.UpdatedAt,
	}, nil
}

func toDBTransaction(tx *transaction.Transaction) *transactionDB {
	tdb := &transactionDB{
		Id:          tx.Id.String(),
		WorkspaceId: tx.WorkspaceId.String(),
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Description: tx.Description,
		Date:        tx.Date,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
	if tx.BankAccountId != nil {
		accountID := tx.BankAccountId.String()
		tdb.BankAccountId = &accountID
	}
	return tdb
}

func (r *TransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	tdb := toDBTransaction(tx)
	return r.DB.WithContext(ctx).Table("transactions").Create(tdb).Error
}

func (r *TransactionRepository) GetById(ctx context.Context, transactionID ulid.ULID) (*transaction.Transaction, error) {
	var tdb transactionDB
	err := r.DB.WithContext(ctx).Where("id = ?", transactionID.String()).First(&tdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainTransaction(&tdb)
}

func (r *TransactionRepository) GetByWorkspaceId(ctx context.Context, workspaceID ulid.ULID, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	query := r.DB.WithContext(ctx).Table("transactions").Where("workspace_id = ?", workspaceID.String())
	return pkg.Paginate[transaction.Transaction, transactionDB](query, pagination, "date DESC", toDomainTransaction)
}
