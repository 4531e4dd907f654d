package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/pharmaflow/pharmapos-backend/internal/config"
	"github.com/pharmaflow/pharmapos-backend/internal/logger"
	"github.com/pharmaflow/pharmapos-backend/internal/migrations"
	"github.com/pharmaflow/pharmapos-backend/internal/modules/audit"
	"github.com/pharmaflow/pharmapos-backend/internal/modules/catalog"
	"github.com/pharmaflow/pharmapos-backend/internal/modules/customer"
	"github.com/pharmaflow/pharmapos-backend/internal/modules/inventory"
	"github.com/pharmaflow/pharmapos-backend/internal/modules/report"
	"github.com/pharmaflow/pharmapos-backend/internal/modules/sale"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
	cfg := config.Load()

	zlog, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		zlog.Fatal("ping database", zap.Error(err))
	}
	if err := migrations.Run(db); err != nil {
		zlog.Fatal("run migrations", zap.Error(err))
	}
	zlog.Info("connected to database")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Reference data ──────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	customerRepo := customer.NewPostgresRepository(db)
	customerService := customer.NewService(customerRepo)
	customer.NewHandler(customerService).RegisterRoutes(router)

	// ── Inventory ledger ────────────────────────────────────
	inventoryRepo := inventory.NewPostgresRepository(db)
	inventoryService := inventory.NewService(inventoryRepo)
	inventory.NewHandler(inventoryService).RegisterRoutes(router)

	// ── Audit log & daily reports ───────────────────────────
	auditRepo := audit.NewPostgresRepository(db)
	audit.NewHandler(auditRepo).RegisterRoutes(router)

	reportRepo := report.NewPostgresRepository(db)
	report.NewHandler(reportRepo).RegisterRoutes(router)

	// ── Sale orchestrator ───────────────────────────────────
	saleRepo := sale.NewPostgresRepository(db, inventoryRepo, customerRepo, auditRepo, reportRepo)
	saleService := sale.NewService(saleRepo, catalogRepo, zlog)
	sale.NewHandler(saleService).RegisterRoutes(router)

	// ── Start server ────────────────────────────────────────
	zlog.Info("pharmapos API server starting", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
