// Package api defines the JSON response types shared across handlers.
package api

import "time"

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body returned for successful mutations without payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a freshly issued access token.
type TokenResponse struct {
	Token string `json:"token"`
}

// LoginResponse carries the access token and the refresh token issued at login.
type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// UserResponse is the client-facing view of a user. The password hash is never
// part of this type.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SignupResponse is the body returned after a successful registration.
type SignupResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// TransactionResponse is the client-facing view of a transaction. The store's
// numeric identity is surfaced as a string id.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateTransactionResponse is the body returned after a successful create.
type CreateTransactionResponse struct {
	Message     string              `json:"message"`
	Transaction TransactionResponse `json:"transaction"`
}

// BalancePointResponse is one point of the balance-over-time chart data.
type BalancePointResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// CategoryTotalResponse is one slice of the expense-by-category chart data.
type CategoryTotalResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}
