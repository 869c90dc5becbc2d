// Package testutil bootstraps a real Postgres database for integration
// tests.
package testutil

import (
	"database/sql"
	"os"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/ArturPronin/coffeeMachineService/internal/db"
)

// SetupDB opens the database named by TEST_DB_URL, migrates it up, and
// truncates all tables so each test starts clean. Tests are skipped when
// TEST_DB_URL is unset.
func SetupDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("TEST_DB_URL")
	if dbURL == "" {
		t.Skip("TEST_DB_URL not set")
	}

	sqlDB, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if err := sqlDB.Ping(); err != nil {
		t.Fatalf("connect to database: %v", err)
	}

	srcDriver, err := iofs.New(db.MigrationsFS, "migrations")
	if err != nil {
		t.Fatalf("create migration source: %v", err)
	}
	dbDriver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		t.Fatalf("create migration driver: %v", err)
	}
	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		t.Fatalf("create migrator: %v", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		t.Fatalf("run migrations: %v", err)
	}

	_, err = sqlDB.Exec(`TRUNCATE orders, drinks, recipe_ingredients, recipes, ingredients`)
	if err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return sqlDB
}
