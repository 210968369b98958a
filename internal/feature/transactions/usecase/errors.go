// Package usecase implements the business logic for the transactions feature.
package usecase

import "errors"

var (
	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransactionNotFound is returned when no transaction matches both the
	// id and the owning user. Ownership mismatches are deliberately not
	// distinguishable from nonexistent ids.
	ErrTransactionNotFound = errors.New("transaction not found")
)
