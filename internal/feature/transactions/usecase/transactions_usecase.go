package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"expense_backend/internal/feature/transactions/domain/entity"
)

// Time ranges accepted by List. Anything else falls back to DefaultTimeRange.
const (
	TimeRangeWeek    = "week"
	TimeRangeMonth   = "month"
	TimeRangeYear    = "year"
	DefaultTimeRange = TimeRangeMonth
)

// Repository abstracts the persistence layer for transactions.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type Repository interface {
	// ListSince returns the user's transactions with date >= since, newest first.
	ListSince(ctx context.Context, userID uint, since time.Time) ([]entity.Transaction, error)

	// Create persists a new transaction.
	Create(ctx context.Context, tx *entity.Transaction) error

	// Update overwrites the mutable fields of the transaction matching both id
	// and userID. It returns ErrTransactionNotFound when nothing matches.
	Update(ctx context.Context, userID, id uint, amount float64, txType, category, description string) error

	// Delete removes the transaction matching both id and userID.
	// It returns ErrTransactionNotFound when nothing matches.
	Delete(ctx context.Context, userID, id uint) error
}

type transactionsUsecase struct {
	repo Repository
	now  func() time.Time
}

// NewTransactionsUsecase creates a new instance of transactionsUsecase.
func NewTransactionsUsecase(repo Repository) *transactionsUsecase {
	return &transactionsUsecase{repo: repo, now: time.Now}
}

// CutoffFor computes the earliest date included in a listing window.
// Month and year use calendar arithmetic, matching AddDate semantics.
func CutoffFor(timeRange string, now time.Time) time.Time {
	switch timeRange {
	case TimeRangeWeek:
		return now.AddDate(0, 0, -7)
	case TimeRangeYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

// List returns the user's transactions within the requested time range,
// newest first. Unrecognized ranges fall back to a month.
func (u *transactionsUsecase) List(ctx context.Context, userID uint, timeRange string) ([]entity.Transaction, error) {
	if timeRange != TimeRangeWeek && timeRange != TimeRangeMonth && timeRange != TimeRangeYear {
		timeRange = DefaultTimeRange
	}
	return u.repo.ListSince(ctx, userID, CutoffFor(timeRange, u.now()))
}

func validate(amount float64, txType, category string) error {
	if amount == 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: amount is required", ErrInvalidInput)
	}
	if amount < 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if !entity.ValidType(txType) {
		return fmt.Errorf("%w: type must be INCOME or EXPENSE", ErrInvalidInput)
	}
	if !entity.ValidCategory(category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
	}
	return nil
}

// Create records a new transaction for the user. The date is stamped to now
// and is immutable afterwards.
func (u *transactionsUsecase) Create(ctx context.Context, userID uint, amount float64, txType, category, description string) (*entity.Transaction, error) {
	if err := validate(amount, txType, category); err != nil {
		return nil, err
	}

	tx := &entity.Transaction{
		UserID:      userID,
		Amount:      amount,
		Type:        txType,
		Category:    category,
		Description: description,
		Date:        u.now(),
	}
	if err := u.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Update overwrites amount, type, category and description of the user's
// transaction. The original date is left untouched.
func (u *transactionsUsecase) Update(ctx context.Context, userID, id uint, amount float64, txType, category, description string) error {
	if err := validate(amount, txType, category); err != nil {
		return err
	}
	return u.repo.Update(ctx, userID, id, amount, txType, category, description)
}

// Delete removes the user's transaction.
func (u *transactionsUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.repo.Delete(ctx, userID, id)
}
