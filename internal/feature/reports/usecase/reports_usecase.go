package usecase

import (
	"context"

	"expense_backend/internal/feature/transactions/domain/entity"
)

// TransactionLister provides the already-scoped transaction window the
// aggregations run over. The aggregation functions themselves never touch
// the store.
type TransactionLister interface {
	List(ctx context.Context, userID uint, timeRange string) ([]entity.Transaction, error)
}

type reportsUsecase struct {
	transactions TransactionLister
}

// NewReportsUsecase creates a new instance of reportsUsecase.
func NewReportsUsecase(transactions TransactionLister) *reportsUsecase {
	return &reportsUsecase{transactions: transactions}
}

// Balance returns the per-transaction delta series for the user's window.
func (u *reportsUsecase) Balance(ctx context.Context, userID uint, timeRange string) ([]BalancePoint, error) {
	txs, err := u.transactions.List(ctx, userID, timeRange)
	if err != nil {
		return nil, err
	}
	return BalanceSeries(txs), nil
}

// Categories returns the per-category expense totals for the user's window.
func (u *reportsUsecase) Categories(ctx context.Context, userID uint, timeRange string) ([]CategoryTotal, error) {
	txs, err := u.transactions.List(ctx, userID, timeRange)
	if err != nil {
		return nil, err
	}
	return CategoryTotals(txs), nil
}
