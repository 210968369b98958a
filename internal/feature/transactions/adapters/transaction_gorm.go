// Package adapters provides repository implementations for the transactions feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"expense_backend/internal/feature/transactions/domain/entity"
	"expense_backend/internal/feature/transactions/usecase"
)

type transactionGorm struct {
	db *gorm.DB
}

var _ usecase.Repository = (*transactionGorm)(nil)

// NewTransactionRepository creates a new instance of transactionGorm.
func NewTransactionRepository(db *gorm.DB) *transactionGorm {
	return &transactionGorm{db: db}
}

// TransactionModel is the GORM model for the transactions table.
type TransactionModel struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index:tx_user_date,priority:1;not null"`
	Amount      float64   `gorm:"not null"`
	Type        string    `gorm:"size:16;not null"`
	Category    string    `gorm:"size:32;not null"`
	Description string    `gorm:"size:255"`
	Date        time.Time `gorm:"index:tx_user_date,priority:2;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

func toModel(e *entity.Transaction) TransactionModel {
	return TransactionModel{
		ID:          e.ID,
		UserID:      e.UserID,
		Amount:      e.Amount,
		Type:        e.Type,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date,
	}
}

func toEntity(m TransactionModel) entity.Transaction {
	return entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Type:        m.Type,
		Category:    m.Category,
		Description: m.Description,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ListSince returns the user's transactions with date >= since, newest first.
func (r *transactionGorm) ListSince(ctx context.Context, userID uint, since time.Time) ([]entity.Transaction, error) {
	var rows []TransactionModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Transaction, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// Create inserts a transaction and writes the generated id and timestamps back
// into the entity.
func (r *transactionGorm) Create(ctx context.Context, tx *entity.Transaction) error {
	m := toModel(tx)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	tx.ID = m.ID
	tx.CreatedAt = m.CreatedAt
	tx.UpdatedAt = m.UpdatedAt
	return nil
}

// Update overwrites the mutable fields of the row matching both id and owner.
// The combined filter means a foreign id and a missing id are indistinguishable.
func (r *transactionGorm) Update(ctx context.Context, userID, id uint, amount float64, txType, category, description string) error {
	result := r.db.WithContext(ctx).
		Model(&TransactionModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"amount":      amount,
			"type":        txType,
			"category":    category,
			"description": description,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrTransactionNotFound
	}
	return nil
}

// Delete removes at most one row, matching both id and owner.
func (r *transactionGorm) Delete(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrTransactionNotFound
	}
	return nil
}
