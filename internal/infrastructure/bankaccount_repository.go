package infrastructure

import (
	"context"
	"time"

	"Cartera/internal/domain/bankaccount"
	"Cartera/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BankAccountRepository struct {
	DB *gorm.DB
}

type bankAccountDB struct {
	Id          string          `gorm:"type:varchar(26);primaryKey"`
	WorkspaceId string          `gorm:"type:varchar(26);index;not null"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Bank        string          `gorm:"type:varchar(100)"`
	Balance     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

func (bankAccountDB) TableName() string {
	return "bank_accounts"
}

func toDomainBankAccount(adb *bankAccountDB) (*bankaccount.BankAccount, error) {
	id, err := pkg.ParseULID(adb.Id)
	if err != nil {
		return nil, err
	}
	wid, err := pkg.ParseULID(adb.WorkspaceId)
	if err != nil {
		return nil, err
	}

	return &bankaccount.BankAccount{
		Id:          id,
		WorkspaceId: wid,
		Name:        adb.Name,
		Bank:        adb.Bank,
		Balance:     adb.Balance,
		CreatedAt:   adb.CreatedAt,
		UpdatedAt:   adb.UpdatedAt,
	}, nil
}

func toDBBankAccount(account *bankaccount.BankAccount) *bankAccountDB {
	return &bankAccountDB{
		Id:          account.Id.String(),
		WorkspaceId: account.WorkspaceId.String(),
		Name:        account.Name,
		Bank:        account.Bank,
		Balance:     account.Balance,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	}
}

func (r *BankAccountRepository) Create(ctx context.Context, account *bankaccount.BankAccount) error {
	adb := toDBBankAccount(account)
	return r.DB.WithContext(ctx).Table("bank_accounts").Create(adb).Error
}

func (r *BankAccountRepository) GetById(ctx context.Context, accountID ulid.ULID) (*bankaccount.BankAccount, error) {
	var adb bankAccountDB
	err := r.DB.WithContext(ctx).Where("id = ?", accountID.String()).First(&adb).Error
	if err != nil {
		return nil, err
	}
	return toDomainBankAccount(&adb)
}

func (r *BankAccountRepository) GetByWorkspaceId(ctx context.Context, workspaceID ulid.ULID, pagination *pkg.PaginationParams) ([]*bankaccount.BankAccount, int64, error) {
	query := r.DB.WithContext(ctx).Table("bank_accounts").Where("workspace_id = ?", workspaceID.String())
	return pkg.Paginate[bankaccount.BankAccount, bankAccountDB](query, pagination, "created_at DESC", toDomainBankAccount)
}

// AdjustBalance aplica o delta apenas quando o saldo resultante é não
// negativo; débito sem fundos não afeta nenhuma linha.
func (r *BankAccountRepository) AdjustBalance(ctx context.Context, accountID ulid.ULID, delta decimal.Decimal) (int64, error) {
	result := r.DB.WithContext(ctx).Model(&bankAccountDB{}).
		Where("id = ? AND balance + ? >= 0", accountID.String(), delta).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}
