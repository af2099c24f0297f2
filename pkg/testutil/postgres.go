package testutil

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/vishxesh10/InsureMate-LIve/pkg/postgres"
)

// PostgresContainer wraps a throwaway PostgreSQL instance with a pool
// already connected to it.
type PostgresContainer struct {
	Container *tcpostgres.PostgresContainer
	DSN       string
	Pool      *pgxpool.Pool
}

// StartPostgres starts a PostgreSQL container and registers its cleanup with
// t. When migrationsDir is non-empty the schema is migrated before returning.
func StartPostgres(t *testing.T, migrationsDir string) *PostgresContainer {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("insuremate_test"),
		tcpostgres.WithUsername("premium"),
		tcpostgres.WithPassword("premium"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	pc := &PostgresContainer{Container: pgContainer}
	t.Cleanup(func() { pc.cleanup(t) })

	pc.DSN, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	if migrationsDir != "" {
		abs, err := filepath.Abs(migrationsDir)
		if err != nil {
			t.Fatalf("failed to resolve migrations dir %s: %v", migrationsDir, err)
		}
		if err := postgres.RunMigrations("file://"+filepath.ToSlash(abs), pc.DSN); err != nil {
			t.Fatalf("failed to migrate test database: %v", err)
		}
	}

	pc.Pool, err = postgres.NewPool(ctx, postgres.Config{URL: pc.DSN, MaxConns: 4})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	return pc
}

// Truncate empties the given tables and resets their identity sequences.
func (pc *PostgresContainer) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pc.Pool.Exec(ctx, "TRUNCATE "+strings.Join(tables, ", ")+" RESTART IDENTITY"); err != nil {
		t.Fatalf("failed to truncate %v: %v", tables, err)
	}
}

func (pc *PostgresContainer) cleanup(t *testing.T) {
	if pc.Pool != nil {
		pc.Pool.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := pc.Container.Terminate(ctx); err != nil {
		t.Logf("warning: failed to terminate postgres container: %v", err)
	}
}
