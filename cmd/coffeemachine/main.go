package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/ArturPronin/coffeeMachineService/internal/api"
	"github.com/ArturPronin/coffeeMachineService/internal/db"
	"github.com/ArturPronin/coffeeMachineService/internal/logging"
	"github.com/ArturPronin/coffeeMachineService/internal/service"
)

func main() {
	logging.Setup()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		slog.Error("DB_URL is required")
		os.Exit(1)
	}

	brewDelay := service.DefaultBrewDelay
	if d := os.Getenv("BREW_DELAY"); d != "" {
		v, err := time.ParseDuration(d)
		if err != nil {
			slog.Error("invalid BREW_DELAY", "error", err)
			os.Exit(1)
		}
		brewDelay = v
	}

	sqlDB, err := sql.Open("postgres", dbURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := runMigrations(sqlDB); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	store := db.NewStore(sqlDB)
	svc := service.New(store, brewDelay)
	handler := api.NewRouter(svc)

	addr := fmt.Sprintf(":%s", port)
	slog.Info("coffee machine service listening", "addr", addr, "brew_delay", brewDelay)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func runMigrations(sqlDB *sql.DB) error {
	srcDriver, err := iofs.New(db.MigrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}
	dbDriver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
