// Package handler provides HTTP handlers for the transactions feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"expense_backend/internal/api"
	"expense_backend/internal/feature/transactions/domain/entity"
	"expense_backend/internal/feature/transactions/transport/http/dto"
	"expense_backend/internal/feature/transactions/usecase"
	jwtmw "expense_backend/internal/platform/jwt"
)

// TransactionsUsecase defines the transaction operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TransactionsUsecase interface {
	List(ctx context.Context, userID uint, timeRange string) ([]entity.Transaction, error)
	Create(ctx context.Context, userID uint, amount float64, txType, category, description string) (*entity.Transaction, error)
	Update(ctx context.Context, userID, id uint, amount float64, txType, category, description string) error
	Delete(ctx context.Context, userID, id uint) error
}

// TransactionHandler handles HTTP requests for transaction operations.
type TransactionHandler struct {
	uc TransactionsUsecase
}

// NewTransactionHandler creates a new instance of TransactionHandler.
func NewTransactionHandler(uc TransactionsUsecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// ToResponse maps a transaction entity to its client-facing shape,
// surfacing the numeric identity as a string id.
func ToResponse(t entity.Transaction) api.TransactionResponse {
	return api.TransactionResponse{
		ID:          strconv.FormatUint(uint64(t.ID), 10),
		Amount:      t.Amount,
		Type:        t.Type,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// List handles GET /api/transactions?timeRange=week|month|year.
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	txs, err := h.uc.List(c.Request.Context(), userID, c.Query("timeRange"))
	if err != nil {
		slog.Error("list transactions failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Error fetching transactions"})
		return
	}

	out := make([]api.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, ToResponse(t))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /api/transactions.
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.TransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing required fields"})
		return
	}
	amount, err := req.Amount.Float64()
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing required fields"})
		return
	}

	tx, err := h.uc.Create(c.Request.Context(), userID, amount, req.Type, req.Category, req.Description)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing required fields"})
			return
		}
		slog.Error("create transaction failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Error creating transaction"})
		return
	}

	c.JSON(http.StatusCreated, api.CreateTransactionResponse{
		Message:     "Transaction created successfully",
		Transaction: ToResponse(*tx),
	})
}

// Update handles PUT /api/transactions/:id. A malformed or foreign id answers
// the same 404 as a missing one.
func (h *TransactionHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Transaction not found"})
		return
	}

	var req dto.TransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing required fields"})
		return
	}
	amount, err := req.Amount.Float64()
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing required fields"})
		return
	}

	err = h.uc.Update(c.Request.Context(), userID, uint(id), amount, req.Type, req.Category, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing required fields"})
		case errors.Is(err, usecase.ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Transaction not found"})
		default:
			slog.Error("update transaction failed", "error", err, "user_id", userID, "id", id)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Error updating transaction"})
		}
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Transaction updated successfully"})
}

// Delete handles DELETE /api/transactions/:id.
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Transaction not found"})
		return
	}

	if err := h.uc.Delete(c.Request.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, usecase.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Transaction not found"})
			return
		}
		slog.Error("delete transaction failed", "error", err, "user_id", userID, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Error deleting transaction"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Transaction deleted successfully"})
}
