package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"expense_backend/internal/app/config"
	"expense_backend/internal/app/di"
	"expense_backend/internal/app/router"
	authadapters "expense_backend/internal/feature/auth/adapters"
	authhandler "expense_backend/internal/feature/auth/transport/handler"
	authusecase "expense_backend/internal/feature/auth/usecase"
	reportshandler "expense_backend/internal/feature/reports/transport/handler"
	reportsusecase "expense_backend/internal/feature/reports/usecase"
	txadapters "expense_backend/internal/feature/transactions/adapters"
	txhandler "expense_backend/internal/feature/transactions/transport/handler"
	txusecase "expense_backend/internal/feature/transactions/usecase"
	"expense_backend/internal/platform/cache"
	"expense_backend/internal/platform/db"
	jwtmw "expense_backend/internal/platform/jwt"
	infraredis "expense_backend/internal/platform/redis"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Println("[WARN] JWT secret is not set. Set ET_JWT_SECRET in production.")
	}

	// db
	gdb, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if cfg.Database.Migrate {
		if err := db.Migrate(gdb); err != nil {
			log.Fatalf("migrate database: %v", err)
		}
	}

	// Redis is optional: without it sessions fall back to the database and
	// list queries go straight to the store.
	var rdb *redisv9.Client
	if cfg.Redis.Enabled {
		if tmp, err := infraredis.NewClient(cfg.Redis); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserRepository(gdb)
	sessionRepo := di.NewSessionRepository(rdb, gdb)
	txRepo := txadapters.NewTransactionRepository(gdb)
	cachedTxRepo := cache.NewCachingTransactionRepository(
		rdb, time.Duration(cfg.Redis.CacheTTL)*time.Second, txRepo, "transactions")

	// Usecase
	generator := jwtmw.NewGenerator(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTTLMinutes)*time.Minute)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, generator,
		time.Duration(cfg.JWT.RefreshTTLHours)*time.Hour)
	txUC := txusecase.NewTransactionsUsecase(cachedTxRepo)
	reportsUC := reportsusecase.NewReportsUsecase(txUC)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	txH := txhandler.NewTransactionHandler(txUC)
	reportsH := reportshandler.NewReportsHandler(reportsUC)

	r := router.NewRouter(cfg, authH, txH, reportsH)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
