// Package dto defines data transfer objects for the transactions feature's HTTP transport layer.
package dto

import "encoding/json"

// TransactionReq is the request body for creating or updating a transaction.
// Amount is a json.Number so both `50` and `"50"` are accepted — the original
// web client submits form state as strings. Non-numeric values are rejected at
// parse time rather than stored.
type TransactionReq struct {
	Amount      json.Number `json:"amount" binding:"required"`
	Type        string      `json:"type" binding:"required"`
	Category    string      `json:"category" binding:"required"`
	Description string      `json:"description"`
}
