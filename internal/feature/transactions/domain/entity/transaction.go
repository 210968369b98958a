// Package entity defines the domain entities for the transactions feature.
package entity

import "time"

// Transaction types.
const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

// Categories is the fixed set of transaction categories, in presentation order.
var Categories = []string{
	"Food",
	"Clothing",
	"Shopping",
	"Transportation",
	"Bills",
	"Health",
	"Other",
}

// Transaction represents a single income or expense record owned by one user.
type Transaction struct {
	ID          uint
	UserID      uint
	Amount      float64
	Type        string
	Category    string
	Description string
	Date        time.Time // stamped at creation, untouched by updates
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidType reports whether t is one of the two transaction types.
func ValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}
