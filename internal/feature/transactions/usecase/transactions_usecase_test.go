package usecase

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expense_backend/internal/feature/transactions/domain/entity"
)

// mockRepository is a mock implementation of the Repository interface.
type mockRepository struct {
	ListSinceFunc func(ctx context.Context, userID uint, since time.Time) ([]entity.Transaction, error)
	CreateFunc    func(ctx context.Context, tx *entity.Transaction) error
	UpdateFunc    func(ctx context.Context, userID, id uint, amount float64, txType, category, description string) error
	DeleteFunc    func(ctx context.Context, userID, id uint) error
}

func (m *mockRepository) ListSince(ctx context.Context, userID uint, since time.Time) ([]entity.Transaction, error) {
	if m.ListSinceFunc != nil {
		return m.ListSinceFunc(ctx, userID, since)
	}
	return nil, nil
}

func (m *mockRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx)
	}
	return nil
}

func (m *mockRepository) Update(ctx context.Context, userID, id uint, amount float64, txType, category, description string) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, id, amount, txType, category, description)
	}
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, userID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

func TestCutoffFor(t *testing.T) {
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		timeRange string
		want      time.Time
	}{
		{"week", TimeRangeWeek, now.AddDate(0, 0, -7)},
		{"month", TimeRangeMonth, now.AddDate(0, -1, 0)},
		{"year", TimeRangeYear, now.AddDate(-1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CutoffFor(tt.timeRange, now))
		})
	}
}

func TestTransactionsUsecase_List(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	newUC := func(captured *time.Time) *transactionsUsecase {
		uc := NewTransactionsUsecase(&mockRepository{
			ListSinceFunc: func(ctx context.Context, userID uint, since time.Time) ([]entity.Transaction, error) {
				*captured = since
				return []entity.Transaction{}, nil
			},
		})
		uc.now = func() time.Time { return now }
		return uc
	}

	tests := []struct {
		name      string
		timeRange string
		want      time.Time
	}{
		{"week window", "week", now.AddDate(0, 0, -7)},
		{"month window", "month", now.AddDate(0, -1, 0)},
		{"year window", "year", now.AddDate(-1, 0, 0)},
		{"empty falls back to month", "", now.AddDate(0, -1, 0)},
		{"garbage falls back to month", "decade", now.AddDate(0, -1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var since time.Time
			uc := newUC(&since)
			_, err := uc.List(context.Background(), 1, tt.timeRange)
			require.NoError(t, err)
			assert.Equal(t, tt.want, since)
		})
	}
}

func TestTransactionsUsecase_Create(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	t.Run("stamps the date and persists", func(t *testing.T) {
		var stored *entity.Transaction
		uc := NewTransactionsUsecase(&mockRepository{
			CreateFunc: func(ctx context.Context, tx *entity.Transaction) error {
				stored = tx
				return nil
			},
		})
		uc.now = func() time.Time { return now }

		tx, err := uc.Create(context.Background(), 1, 50, entity.TypeExpense, "Food", "lunch")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, now, tx.Date)
		assert.Equal(t, uint(1), tx.UserID)
		assert.Equal(t, 50.0, tx.Amount)
	})

	t.Run("invalid input never reaches the repository", func(t *testing.T) {
		tests := []struct {
			name     string
			amount   float64
			txType   string
			category string
		}{
			{"zero amount", 0, entity.TypeExpense, "Food"},
			{"negative amount", -5, entity.TypeExpense, "Food"},
			{"NaN amount", math.NaN(), entity.TypeExpense, "Food"},
			{"infinite amount", math.Inf(1), entity.TypeExpense, "Food"},
			{"lowercase type", 10, "income", "Food"},
			{"unknown type", 10, "TRANSFER", "Food"},
			{"unknown category", 10, entity.TypeExpense, "Groceries"},
			{"empty category", 10, entity.TypeExpense, ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := NewTransactionsUsecase(&mockRepository{
					CreateFunc: func(ctx context.Context, tx *entity.Transaction) error {
						t.Error("repository must not be called")
						return nil
					},
				})
				_, err := uc.Create(context.Background(), 1, tt.amount, tt.txType, tt.category, "")
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestTransactionsUsecase_Update(t *testing.T) {
	t.Run("validates before delegating", func(t *testing.T) {
		uc := NewTransactionsUsecase(&mockRepository{
			UpdateFunc: func(ctx context.Context, userID, id uint, amount float64, txType, category, description string) error {
				t.Error("repository must not be called")
				return nil
			},
		})
		err := uc.Update(context.Background(), 1, 5, -1, entity.TypeExpense, "Food", "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("passes through repository errors", func(t *testing.T) {
		uc := NewTransactionsUsecase(&mockRepository{
			UpdateFunc: func(ctx context.Context, userID, id uint, amount float64, txType, category, description string) error {
				return ErrTransactionNotFound
			},
		})
		err := uc.Update(context.Background(), 1, 5, 10, entity.TypeExpense, "Food", "")
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

func TestTransactionsUsecase_Delete(t *testing.T) {
	var gotUser, gotID uint
	uc := NewTransactionsUsecase(&mockRepository{
		DeleteFunc: func(ctx context.Context, userID, id uint) error {
			gotUser, gotID = userID, id
			return nil
		},
	})
	require.NoError(t, uc.Delete(context.Background(), 7, 42))
	assert.Equal(t, uint(7), gotUser)
	assert.Equal(t, uint(42), gotID)
}
