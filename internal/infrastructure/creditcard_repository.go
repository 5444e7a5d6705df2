package infrastructure

import (
	"context"
	"errors"
	"time"

	"Cartera/internal/domain/creditcard"
	appErrors "Cartera/internal/errors"
	"Cartera/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreditCardRepository struct {
	DB *gorm.DB
}

type cardDB struct {
	Id             string    `gorm:"type:varchar(26);primaryKey"`
	WorkspaceId    string    `gorm:"type:varchar(26);index:idx_cards_workspace_id;not null"`
	Name           string    `gorm:"type:varchar(100);not null"`
	LastFourDigits string    `gorm:"type:varchar(4)"`
	Issuer         string    `gorm:"type:varchar(100)"`
	Network        string    `gorm:"type:varchar(20);not null"`
	CutoffDay      int       `gorm:"not null;check:cutoff_day >= 1 AND cutoff_day <= 29;index:idx_cards_cutoff_day"`
	DueDay         int       `gorm:"not null;check:due_day >= 1 AND due_day <= 29"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (cardDB) TableName() string {
	return "cards"
}

type purchaseDB struct {
	Id               string          `gorm:"type:varchar(26);primaryKey"`
	CardId           string          `gorm:"type:varchar(26);index:idx_purchases_card_id;not null"`
	WorkspaceId      string          `gorm:"type:varchar(26);index:idx_purchases_workspace_id;not null"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PurchaseDate     time.Time       `gorm:"type:date;not null"`
	InstallmentCount int             `gorm:"not null;default:0;check:installment_count >= 0"`
	PaidInstallments int             `gorm:"not null;default:0;check:paid_installments >= 0"`
	Reason           string          `gorm:"type:varchar(255)"`
	Counterparty     *string         `gorm:"type:varchar(100)"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

func (purchaseDB) TableName() string {
	return "credit_purchases"
}

type installmentDB struct {
	Id            string          `gorm:"type:varchar(26);primaryKey"`
	PurchaseId    string          `gorm:"type:varchar(26);index:idx_installments_purchase_id;not null"`
	CardId        string          `gorm:"type:varchar(26);index:idx_installments_card_id;not null"`
	Number        int             `gorm:"not null;check:number >= 1"`
	DueDate       time.Time       `gorm:"type:date;not null;index:idx_installments_due_date"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Paid          bool            `gorm:"not null;default:false"`
	StatementId   *string         `gorm:"type:varchar(26);index:idx_installments_statement_id"`
	TransactionId *string         `gorm:"type:varchar(26)"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

func (installmentDB) TableName() string {
	return "installments"
}

type statementDB struct {
	Id            string          `gorm:"type:varchar(26);primaryKey"`
	CardId        string          `gorm:"type:varchar(26);uniqueIndex:idx_statements_card_period;not null"`
	WorkspaceId   string          `gorm:"type:varchar(26);index:idx_statements_workspace_id;not null"`
	Year          int             `gorm:"uniqueIndex:idx_statements_card_period;not null"`
	Month         int             `gorm:"uniqueIndex:idx_statements_card_period;not null;check:month >= 1 AND month <= 12"`
	DueDate       time.Time       `gorm:"type:date;not null;index:idx_statements_due_date"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'CLOSED'"`
	TransactionId *string         `gorm:"type:varchar(26)"`
	PaidAt        *time.Time      `gorm:"type:timestamp"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

func (statementDB) TableName() string {
	return "statements"
}

func toDomainCard(cdb *cardDB) (*creditcard.Card, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, err
	}
	wid, err := pkg.ParseULID(cdb.WorkspaceId)
	if err != nil {
		return nil, err
	}

	return &creditcard.Card{
		Id:             id,
		WorkspaceId:    wid,
		Name:           cdb.Name,
		LastFourDigits: cdb.LastFourDigits,
		Issuer:         cdb.Issuer,
		Network:        creditcard.CardNetwork(cdb.Network),
		CutoffDay:      cdb.CutoffDay,
		DueDay:         cdb.DueDay,
		CreatedAt:      cdb.CreatedAt,
		UpdatedAt:      cdb.UpdatedAt,
	}, nil
}

func toDBCard(card *creditcard.Card) *cardDB {
	return &cardDB{
		Id:             card.Id.String(),
		WorkspaceId:    card.WorkspaceId.String(),
		Name:           card.Name,
		LastFourDigits: card.LastFourDigits,
		Issuer:         card.Issuer,
		Network:        string(card.Network),
		CutoffDay:      card.CutoffDay,
		DueDay:         card.DueDay,
		CreatedAt:      card.CreatedAt,
		UpdatedAt:      card.UpdatedAt,
	}
}

func toDomainPurchase(pdb *purchaseDB) (*creditcard.CreditPurchase, error) {
	id, err := pkg.ParseULID(pdb.Id)
	if err != nil {
		return nil, err
	}
	cid, err := pkg.ParseULID(pdb.CardId)
	if err != nil {
		return nil, err
	}
	wid, err := pkg.ParseULID(pdb.WorkspaceId)
	if err != nil {
		return nil, err
	}

	return &creditcard.CreditPurchase{
		Id:               id,
		CardId:           cid,
		WorkspaceId:      wid,
		Amount:           pdb.Amount,
		PurchaseDate:     pdb.PurchaseDate,
		InstallmentCount: pdb.InstallmentCount,
		PaidInstallments: pdb.PaidInstallments,
		Reason:           pdb.Reason,
		Counterparty:     pdb.Counterparty,
		CreatedAt:        pdb.CreatedAt,
		UpdatedAt:        pdb.UpdatedAt,
	}, nil
}

func toDBPurchase(purchase *creditcard.CreditPurchase) *purchaseDB {
	return &purchaseDB{
		Id:               purchase.Id.String(),
		CardId:           purchase.CardId.String(),
		WorkspaceId:      purchase.WorkspaceId.String(),
		Amount:           purchase.Amount,
		PurchaseDate:     purchase.PurchaseDate,
		InstallmentCount: purchase.InstallmentCount,
		PaidInstallments: purchase.PaidInstallments,
		Reason:           purchase.Reason,
		Counterparty:     purchase.Counterparty,
		CreatedAt:        purchase.CreatedAt,
		UpdatedAt:        purchase.UpdatedAt,
	}
}

func toDomainInstallment(idb *installmentDB) (*creditcard.Installment, error) {
	id, err := pkg.ParseULID(idb.Id)
	if err != nil {
		return nil, err
	}
	pid, err := pkg.ParseULID(idb.PurchaseId)
	if err != nil {
		return nil, err
	}
	cid, err := pkg.ParseULID(idb.CardId)
	if err != nil {
		return nil, err
	}
	sid, err := pkg.ParseULIDPtr(idb.StatementId)
	if err != nil {
		return nil, err
	}
	tid, err := pkg.ParseULIDPtr(idb.TransactionId)
	if err != nil {
		return nil, err
	}

	return &creditcard.Installment{
		Id:            id,
		PurchaseId:    pid,
		CardId:        cid,
		Number:        idb.Number,
		DueDate:       idb.DueDate,
		Amount:        idb.Amount,
		Paid:          idb.Paid,
		StatementId:   sid,
		TransactionId: tid,
		CreatedAt:     idb.CreatedAt,
		UpdatedAt:     idb.UpdatedAt,
	}, nil
}

func toDBInstallment(installment *creditcard.Installment) *installmentDB {
	idb := &installmentDB{
		Id:         installment.Id.String(),
		PurchaseId: installment.PurchaseId.String(),
		CardId:     installment.CardId.String(),
		Number:     installment.Number,
		DueDate:    installment.DueDate,
		Amount:     installment.Amount,
		Paid:       installment.Paid,
		CreatedAt:  installment.CreatedAt,
		UpdatedAt:  installment.UpdatedAt,
	}
	if installment.StatementId != nil {
		statementID := installment.StatementId.String()
		idb.StatementId = &statementID
	}
	if installment.TransactionId != nil {
		transactionID := installment.TransactionId.String()
		idb.TransactionId = &transactionID
	}
	return idb
}

func toDomainStatement(sdb *statementDB) (*creditcard.Statement, error) {
	id, err := pkg.ParseULID(sdb.Id)
	if err != nil {
		return nil, err
	}
	cid, err := pkg.ParseULID(sdb.CardId)
	if err != nil {
		return nil, err
	}
	wid, err := pkg.ParseULID(sdb.WorkspaceId)
	if err != nil {
		return nil, err
	}
	tid, err := pkg.ParseULIDPtr(sdb.TransactionId)
	if err != nil {
		return nil, err
	}

	return &creditcard.Statement{
		Id:            id,
		CardId:        cid,
		WorkspaceId:   wid,
		Year:          sdb.Year,
		Month:         sdb.Month,
		DueDate:       sdb.DueDate,
		TotalAmount:   sdb.TotalAmount,
		Status:        creditcard.StatementStatus(sdb.Status),
		TransactionId: tid,
		PaidAt:        sdb.PaidAt,
		CreatedAt:     sdb.CreatedAt,
		UpdatedAt:     sdb.UpdatedAt,
	}, nil
}

func toDBStatement(statement *creditcard.Statement) *statementDB {
	sdb := &statementDB{
		Id:          statement.Id.String(),
		CardId:      statement.CardId.String(),
		WorkspaceId: statement.WorkspaceId.String(),
		Year:        statement.Year,
		Month:       statement.Month,
		DueDate:     statement.DueDate,
		TotalAmount: statement.TotalAmount,
		Status:      string(statement.Status),
		PaidAt:      statement.PaidAt,
		CreatedAt:   statement.CreatedAt,
		UpdatedAt:   statement.UpdatedAt,
	}
	if statement.TransactionId != nil {
		transactionID := statement.TransactionId.String()
		sdb.TransactionId = &transactionID
	}
	return sdb
}

func (r *CreditCardRepository) CreateCard(ctx context.Context, card *creditcard.Card) error {
	cdb := toDBCard(card)
	return r.DB.WithContext(ctx).Table("cards").Create(cdb).Error
}

func (r *CreditCardRepository) UpdateCard(ctx context.Context, card *creditcard.Card) error {
	cdb := toDBCard(card)
	cdb.UpdatedAt = time.Now()
	return r.DB.WithContext(ctx).Table("cards").Where("id = ?", cdb.Id).Updates(cdb).Error
}

func (r *CreditCardRepository) GetCardById(ctx context.Context, cardID ulid.ULID) (*creditcard.Card, error) {
	var cdb cardDB
	err := r.DB.WithContext(ctx).Where("id = ?", cardID.String()).First(&cdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainCard(&cdb)
}

func (r *CreditCardRepository) GetCardsByWorkspaceId(ctx context.Context, workspaceID ulid.ULID, pagination *pkg.PaginationParams) ([]*creditcard.Card, int64, error) {
	query := r.DB.WithContext(ctx).Table("cards").Where("workspace_id = ?", workspaceID.String())
	return pkg.Paginate[creditcard.Card, cardDB](query, pagination, "created_at DESC", toDomainCard)
}

func (r *CreditCardRepository) GetCardsByCutoffDay(ctx context.Context, day int) ([]*creditcard.Card, error) {
	var rows []cardDB
	err := r.DB.WithContext(ctx).Where("cutoff_day = ?", day).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	cards := make([]*creditcard.Card, 0, len(rows))
	for i := range rows {
		card, err := toDomainCard(&rows[i])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (r *CreditCardRepository) CreatePurchase(ctx context.Context, purchase *creditcard.CreditPurchase) error {
	pdb := toDBPurchase(purchase)
	return r.DB.WithContext(ctx).Table("credit_purchases").Create(pdb).Error
}

// DeletePurchase remove a compra e as parcelas dela em uma única transação.
func (r *CreditCardRepository) DeletePurchase(ctx context.Context, purchaseID ulid.ULID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_id = ?", purchaseID.String()).Delete(&installmentDB{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", purchaseID.String()).Delete(&purchaseDB{}).Error
	})
}

func (r *CreditCardRepository) GetPurchaseById(ctx context.Context, purchaseID ulid.ULID) (*creditcard.CreditPurchase, error) {
	var pdb purchaseDB
	err := r.DB.WithContext(ctx).Where("id = ?", purchaseID.String()).First(&pdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainPurchase(&pdb)
}

func (r *CreditCardRepository) GetPurchasesByCardId(ctx context.Context, cardID ulid.ULID, pagination *pkg.PaginationParams) ([]*creditcard.CreditPurchase, int64, error) {
	query := r.DB.WithContext(ctx).Table("credit_purchases").Where("card_id = ?", cardID.String())
	return pkg.Paginate[creditcard.CreditPurchase, purchaseDB](query, pagination, "purchase_date DESC", toDomainPurchase)
}

func (r *CreditCardRepository) CreateInstallments(ctx context.Context, installments []*creditcard.Installment) error {
	if len(installments) == 0 {
		return nil
	}

	rows := make([]*installmentDB, 0, len(installments))
	for _, installment := range installments {
		rows = append(rows, toDBInstallment(installment))
	}
	return r.DB.WithContext(ctx).Table("installments").Create(rows).Error
}

func (r *CreditCardRepository) GetInstallmentsByPurchaseId(ctx context.Context, purchaseID ulid.ULID) ([]*creditcard.Installment, error) {
	var rows []installmentDB
	err := r.DB.WithContext(ctx).
		Where("purchase_id = ?", purchaseID.String()).
		Order("number ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainInstallments(rows)
}

func (r *CreditCardRepository) GetInstallmentsByStatementId(ctx context.Context, statementID ulid.ULID) ([]*creditcard.Installment, error) {
	var rows []installmentDB
	err := r.DB.WithContext(ctx).
		Where("statement_id = ?", statementID.String()).
		Order("due_date ASC, number ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainInstallments(rows)
}

func (r *CreditCardRepository) GetOpenInstallmentsDueBetween(ctx context.Context, cardID ulid.ULID, from, to time.Time) ([]*creditcard.Installment, error) {
	var rows []installmentDB
	err := r.DB.WithContext(ctx).
		Where("card_id = ? AND statement_id IS NULL AND due_date >= ? AND due_date <= ?", cardID.String(), from, to).
		Order("due_date ASC, number ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainInstallments(rows)
}

func toDomainInstallments(rows []installmentDB) ([]*creditcard.Installment, error) {
	installments := make([]*creditcard.Installment, 0, len(rows))
	for i := range rows {
		installment, err := toDomainInstallment(&rows[i])
		if err != nil {
			return nil, err
		}
		installments = append(installments, installment)
	}
	return installments, nil
}

func (r *CreditCardRepository) GetStatementById(ctx context.Context, statementID ulid.ULID) (*creditcard.Statement, error) {
	var sdb statementDB
	err := r.DB.WithContext(ctx).Where("id = ?", statementID.String()).First(&sdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainStatement(&sdb)
}

func (r *CreditCardRepository) GetStatementByPeriod(ctx context.Context, cardID ulid.ULID, year, month int) (*creditcard.Statement, error) {
	var sdb statementDB
	err := r.DB.WithContext(ctx).
		Where("card_id = ? AND year = ? AND month = ?", cardID.String(), year, month).
		First(&sdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainStatement(&sdb)
}

func (r *CreditCardRepository) GetStatementsByCardId(ctx context.Context, cardID ulid.ULID, pagination *pkg.PaginationParams) ([]*creditcard.Statement, int64, error) {
	query := r.DB.WithContext(ctx).Table("statements").Where("card_id = ?", cardID.String())
	return pkg.Paginate[creditcard.Statement, statementDB](query, pagination, "year DESC, month DESC", toDomainStatement)
}

func (r *CreditCardRepository) CreateStatementWithInstallments(ctx context.Context, statement *creditcard.Statement, installmentIDs []ulid.ULID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sdb := toDBStatement(statement)
		if err := tx.Table("statements").Create(sdb).Error; err != nil {
			return err
		}

		ids := make([]string, 0, len(installmentIDs))
		for _, id := range installmentIDs {
			ids = append(ids, id.String())
		}

		result := tx.Model(&installmentDB{}).
			Where("id IN ? AND statement_id IS NULL", ids).
			Updates(map[string]interface{}{
				"statement_id": sdb.Id,
				"updated_at":   time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(ids)) {
			return appErrors.NewInvalidStateError("parcela ja anexada a outra fatura")
		}
		return nil
	})
}

func (r *CreditCardRepository) SettleStatement(ctx context.Context, statementID, transactionID ulid.ULID, paidAt time.Time) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []installmentDB
		if err := tx.Where("statement_id = ?", statementID.String()).Find(&rows).Error; err != nil {
			return err
		}

		result := tx.Model(&installmentDB{}).
			Where("statement_id = ? AND paid = false", statementID.String()).
			Updates(map[string]interface{}{
				"paid":           true,
				"transaction_id": transactionID.String(),
				"updated_at":     paidAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(rows)) {
			return appErrors.NewInvalidStateError("fatura contem parcelas ja pagas")
		}

		for i := range rows {
			counter := tx.Model(&purchaseDB{}).
				Where("id = ? AND paid_installments < installment_count", rows[i].PurchaseId).
				Updates(map[string]interface{}{
					"paid_installments": gorm.Expr("paid_installments + 1"),
					"updated_at":        paidAt,
				})
			if counter.Error != nil {
				return counter.Error
			}
			if counter.RowsAffected == 0 {
				return appErrors.NewInvalidStateError("contador de parcelas pagas excederia o total da compra")
			}
		}

		return tx.Model(&statementDB{}).
			Where("id = ?", statementID.String()).
			Updates(map[string]interface{}{
				"status":         string(creditcard.StatementPaid),
				"transaction_id": transactionID.String(),
				"paid_at":        paidAt,
				"updated_at":     paidAt,
			}).Error
	})
}
