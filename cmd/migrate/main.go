// Command migrate manages the HRMS database schema.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/asnhr/hrms/internal/infrastructure/config"
	"github.com/asnhr/hrms/internal/infrastructure/logger"
	"github.com/asnhr/hrms/internal/infrastructure/migration"
	"github.com/asnhr/hrms/migrations"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const defaultMigrationsDir = "migrations"

func main() {
	var (
		migrationsPath string
		logLevel       string
	)
	flag.StringVar(&migrationsPath, "path", "", "Read migrations from this directory instead of the embedded set")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// create and list work on files and never touch the database
	switch command {
	case "create":
		if len(args) < 2 {
			log.Fatal("Migration name required. Usage: migrate create <name>")
		}
		mf, err := migration.CreateMigration(dirOrDefault(migrationsPath), args[1])
		if err != nil {
			log.Fatal("Failed to create migration", zap.Error(err))
		}
		log.Info("Migration created",
			zap.String("version", mf.Version),
			zap.String("up_file", mf.UpPath),
			zap.String("down_file", mf.DownPath),
		)
		return
	case "list":
		names, err := migration.ListMigrations(dirOrDefault(migrationsPath))
		if err != nil {
			log.Fatal("Failed to list migrations", zap.Error(err))
		}
		if len(names) == 0 {
			log.Info("No migrations found")
			return
		}
		log.Info("Available migrations", zap.Int("count", len(names)))
		for _, n := range names {
			fmt.Println("  -", n)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	m, closeDB := openMigrator(cfg, migrationsPath, log)
	defer closeDB()
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("Failed to close migrator", zap.Error(err))
		}
	}()

	log.Info("Migration CLI started", zap.String("command", command), zap.String("database", cfg.Database.DBName))

	switch command {
	case "up":
		if err := m.Up(); err != nil {
			log.Fatal("Migration up failed", zap.Error(err))
		}
	case "down":
		if err := m.Down(); err != nil {
			log.Fatal("Migration down failed", zap.Error(err))
		}
	case "step":
		n, err := intArg(args, "step <n>")
		if err != nil {
			log.Fatal("Invalid step count", zap.Error(err))
		}
		if err := m.Steps(n); err != nil {
			log.Fatal("Migration step failed", zap.Error(err))
		}
	case "goto":
		n, err := intArg(args, "goto <version>")
		if err != nil || n < 0 {
			log.Fatal("Invalid version number", zap.Error(err))
		}
		if err := m.GoTo(uint(n)); err != nil {
			log.Fatal("Migration goto failed", zap.Error(err))
		}
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatal("Failed to get version", zap.Error(err))
		}
		if version == 0 {
			log.Info("No migrations applied")
			return
		}
		log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
	case "force":
		n, err := intArg(args, "force <version>")
		if err != nil {
			log.Fatal("Invalid version number", zap.Error(err))
		}
		if err := m.Force(n); err != nil {
			log.Fatal("Force version failed", zap.Error(err))
		}
	default:
		log.Error("Unknown command", zap.String("command", command))
		printUsage()
		os.Exit(1)
	}
}

func openMigrator(cfg *config.Config, migrationsPath string, log *zap.Logger) (*migration.Migrator, func()) {
	if migrationsPath != "" {
		abs, err := filepath.Abs(migrationsPath)
		if err != nil {
			log.Fatal("Failed to resolve migrations path", zap.Error(err))
		}
		m, err := migration.NewFromPath(cfg.Database.DSN(), abs, log)
		if err != nil {
			log.Fatal("Failed to create migrator", zap.Error(err))
		}
		return m, func() {}
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database", zap.Error(err))
	}
	m, err := migration.New(db, migrations.FS, log)
	if err != nil {
		_ = db.Close()
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	return m, func() { _ = db.Close() }
}

func dirOrDefault(path string) string {
	if path != "" {
		return path
	}
	return defaultMigrationsDir
}

func intArg(args []string, usage string) (int, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("missing argument, usage: migrate %s", usage)
	}
	return strconv.Atoi(args[1])
}

func printUsage() {
	fmt.Println(`HRMS Database Migration Tool

Usage:
  migrate [flags] <command> [arguments]

Commands:
  up                Apply all pending migrations
  down              Roll back all migrations
  step <n>          Apply n migrations (positive=up, negative=down)
  goto <version>    Migrate to a specific version
  version           Show current migration version
  force <version>   Force set migration version (repairs a dirty database)
  create <name>     Create the next NNNNNN_name.up/down.sql pair
  list              List migrations in the migrations directory

Flags:
  -path string       Read migrations from a directory instead of the embedded set
  -log-level string  Log level: debug, info, warn, error (default: info)

Environment:
  HRMS_DATABASE_HOST, HRMS_DATABASE_PORT, HRMS_DATABASE_USER,
  HRMS_DATABASE_PASSWORD, HRMS_DATABASE_DBNAME, HRMS_DATABASE_SSLMODE`)
}
