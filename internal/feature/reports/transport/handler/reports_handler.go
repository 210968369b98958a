// Package handler provides HTTP handlers for the reports feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"expense_backend/internal/api"
	"expense_backend/internal/feature/reports/usecase"
	jwtmw "expense_backend/internal/platform/jwt"
)

// ReportsUsecase defines the aggregation operations the handler depends on.
type ReportsUsecase interface {
	Balance(ctx context.Context, userID uint, timeRange string) ([]usecase.BalancePoint, error)
	Categories(ctx context.Context, userID uint, timeRange string) ([]usecase.CategoryTotal, error)
}

// ReportsHandler handles HTTP requests for chart data.
type ReportsHandler struct {
	uc ReportsUsecase
}

// NewReportsHandler creates a new instance of ReportsHandler.
func NewReportsHandler(uc ReportsUsecase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// Balance handles GET /api/reports/balance?timeRange=.
func (h *ReportsHandler) Balance(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	points, err := h.uc.Balance(c.Request.Context(), userID, c.Query("timeRange"))
	if err != nil {
		slog.Error("balance report failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Error fetching report"})
		return
	}

	out := make([]api.BalancePointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, api.BalancePointResponse{
			Date:   p.Date.Format("2006-01-02"),
			Amount: p.Amount,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Categories handles GET /api/reports/categories?timeRange=.
func (h *ReportsHandler) Categories(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	totals, err := h.uc.Categories(c.Request.Context(), userID, c.Query("timeRange"))
	if err != nil {
		slog.Error("category report failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Error fetching report"})
		return
	}

	out := make([]api.CategoryTotalResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, api.CategoryTotalResponse{Category: t.Category, Total: t.Total})
	}
	c.JSON(http.StatusOK, out)
}
