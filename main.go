package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nemopss/budget-tracker/api"
	"github.com/nemopss/budget-tracker/auth"
	"github.com/nemopss/budget-tracker/db"
	_ "github.com/nemopss/budget-tracker/docs"
	"github.com/nemopss/budget-tracker/logging"
)

const defaultTokenTTL = 30 * time.Minute

// @title Budget Tracker API
// @version 1.0
// @description Personal finance tracking API: income/expense records and summaries.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is optional; in deployment the variables come from the host.
	_ = godotenv.Load()

	if err := logging.Init(os.Getenv("LOG_LEVEL")); err != nil {
		logging.Logger.Fatalf("failed to initialize logger: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logging.Logger.Fatal("JWT_SECRET is required")
	}

	ttl := defaultTokenTTL
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			logging.Logger.Fatalf("invalid TOKEN_TTL: %v", err)
		}
		ttl = parsed
	}

	var store db.Store
	if connStr := os.Getenv("POSTGRES_URL"); connStr != "" {
		storage, err := db.NewStorage(connStr)
		if err != nil {
			logging.Logger.Fatalf("failed to connect to database: %v", err)
		}
		store = storage
	} else {
		logging.Logger.Warn("POSTGRES_URL not set, using in-memory storage")
		store = db.NewMemory()
	}
	defer store.Close()

	handler := api.NewHandler(store, auth.NewService(jwtSecret, ttl))
	r := api.NewRouter(handler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logging.Logger.Info("server starting")
	if err := r.Run(); err != nil {
		logging.Logger.Fatalf("server stopped: %v", err)
	}
}
