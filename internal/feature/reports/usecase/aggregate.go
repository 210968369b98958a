// Package usecase implements the chart aggregations for the reports feature.
package usecase

import (
	"time"

	"expense_backend/internal/feature/transactions/domain/entity"
)

// BalancePoint is one point of the balance-over-time series.
type BalancePoint struct {
	Date   time.Time
	Amount float64
}

// CategoryTotal is the summed expense amount for one category.
type CategoryTotal struct {
	Category string
	Total    float64
}

// BalanceSeries maps each transaction to a signed delta: +amount for income,
// -amount for expense, preserving the input order. Each point stands alone;
// this is deliberately not a cumulative running sum, matching how the chart
// has always rendered.
func BalanceSeries(txs []entity.Transaction) []BalancePoint {
	points := make([]BalancePoint, 0, len(txs))
	for _, t := range txs {
		amount := t.Amount
		if t.Type != entity.TypeIncome {
			amount = -amount
		}
		points = append(points, BalancePoint{Date: t.Date, Amount: amount})
	}
	return points
}

// CategoryTotals sums expense amounts per fixed category. Every category
// appears exactly once, zero-filled, in the fixed presentation order
// regardless of transaction order. Income is never counted.
func CategoryTotals(txs []entity.Transaction) []CategoryTotal {
	sums := make(map[string]float64, len(entity.Categories))
	for _, t := range txs {
		if t.Type == entity.TypeExpense {
			sums[t.Category] += t.Amount
		}
	}

	out := make([]CategoryTotal, 0, len(entity.Categories))
	for _, cat := range entity.Categories {
		out = append(out, CategoryTotal{Category: cat, Total: sums[cat]})
	}
	return out
}
