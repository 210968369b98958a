// Package router wires the HTTP routes.
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"expense_backend/internal/api"
	"expense_backend/internal/app/config"
	authhandler "expense_backend/internal/feature/auth/transport/handler"
	reportshandler "expense_backend/internal/feature/reports/transport/handler"
	txhandler "expense_backend/internal/feature/transactions/transport/handler"
	jwtmw "expense_backend/internal/platform/jwt"
	"expense_backend/internal/shared/ratelimiter"
)

// Credential endpoints get a tighter budget than the rest of the API.
const (
	authRateLimit  = 10
	authRateWindow = time.Minute
)

// NewRouter configures the Gin engine with all application routes.
func NewRouter(cfg *config.Config, authH *authhandler.AuthHandler,
	txH *txhandler.TransactionHandler, reportsH *reportshandler.ReportsHandler) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
	})

	apiGroup := r.Group("/api")

	// Public routes: signup, login, refresh. Rate limited per client IP.
	limiter := ratelimiter.NewRateLimiter(authRateLimit, authRateWindow)
	auth := apiGroup.Group("/auth", rateLimit(limiter))
	auth.POST("/signup", authH.Signup)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Everything below requires a valid access token.
	protected := apiGroup.Group("", jwtmw.AuthRequired(cfg.JWT.Secret))

	protected.POST("/auth/logout", authH.Logout)
	protected.GET("/auth/me", authH.Me)

	protected.GET("/transactions", txH.List)
	protected.POST("/transactions", txH.Create)
	protected.PUT("/transactions/:id", txH.Update)
	protected.DELETE("/transactions/:id", txH.Delete)

	protected.GET("/reports/balance", reportsH.Balance)
	protected.GET("/reports/categories", reportsH.Categories)

	return r
}

// rateLimit rejects clients that exceed the limiter's budget.
func rateLimit(limiter *ratelimiter.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "too many requests"})
			return
		}
		c.Next()
	}
}
