package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/tyma/backend/internal/config"
	"github.com/tyma/backend/internal/logging"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)   apply pending migrations
  reset       drop all tables and recreate from the consolidated schema
  fresh       drop all tables and apply every migration in order`)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("connect failed", zap.Error(err))
	}
	defer pool.Close()

	migrationDir := findMigrationDir()

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "":
		runIncremental(ctx, pool, logger, migrationDir)
	case "reset":
		runDropAll(ctx, pool, logger, migrationDir)
		runConsolidated(ctx, pool, logger, migrationDir)
	case "fresh":
		runDropAll(ctx, pool, logger, migrationDir)
		runIncremental(ctx, pool, logger, migrationDir)
	default:
		usage()
	}
}

func findMigrationDir() string {
	dir := "migrations"
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		dir = "../migrations"
	}
	return dir
}

// collectUpFiles returns the .up.sql file names in sorted order.
func collectUpFiles(logger *zap.Logger, dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Fatal("read migrations dir failed", zap.Error(err))
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files
}

func ensureSchemaMigrations(ctx context.Context, pool *pgxpool.Pool) {
	_, _ = pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
}

// ---------------------------------------------------------------------------
// (default) incremental migration
// ---------------------------------------------------------------------------
func runIncremental(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger, dir string) {
	ensureSchemaMigrations(ctx, pool)

	upFiles := collectUpFiles(logger, dir)
	applied := 0
	for i, filename := range upFiles {
		name := strings.TrimSuffix(filename, ".up.sql")

		var exists bool
		_ = pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE name=$1)", name).Scan(&exists)
		if exists {
			continue
		}

		sql, err := os.ReadFile(filepath.Join(dir, filename))
		if err != nil {
			logger.Fatal("read migration failed", zap.String("migration", name), zap.Error(err))
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			logger.Fatal("migration failed", zap.String("migration", name), zap.Error(err))
		}
		if _, err := pool.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name); err != nil {
			logger.Fatal("record migration failed", zap.String("migration", name), zap.Error(err))
		}
		applied++
		logger.Info("migration completed", zap.Int("number", i+1), zap.String("migration", name))
	}

	if applied == 0 {
		logger.Info("all migrations already applied")
	} else {
		logger.Info("migrations completed", zap.Int("count", applied))
	}
}

// ---------------------------------------------------------------------------
// drop all tables
// ---------------------------------------------------------------------------
func runDropAll(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger, dir string) {
	logger.Info("dropping all tables")
	sql, err := os.ReadFile(filepath.Join(dir, "000_drop_all.sql"))
	if err != nil {
		logger.Fatal("read 000_drop_all.sql failed", zap.Error(err))
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		logger.Fatal("drop all failed", zap.Error(err))
	}
	logger.Info("all tables dropped")
}

// ---------------------------------------------------------------------------
// recreate from the consolidated schema
// ---------------------------------------------------------------------------
func runConsolidated(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger, dir string) {
	logger.Info("applying consolidated schema")
	sql, err := os.ReadFile(filepath.Join(dir, "000_consolidated.sql"))
	if err != nil {
		logger.Fatal("read 000_consolidated.sql failed", zap.Error(err))
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		logger.Fatal("consolidated apply failed", zap.Error(err))
	}

	// Mark every migration as applied.
	ensureSchemaMigrations(ctx, pool)
	upFiles := collectUpFiles(logger, dir)
	for _, filename := range upFiles {
		name := strings.TrimSuffix(filename, ".up.sql")
		_, _ = pool.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1) ON CONFLICT DO NOTHING", name)
	}
	logger.Info("consolidated schema applied", zap.Int("migrations_marked", len(upFiles)))
}
