package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/riskibarqy/caddyshack/db/migrations"
	"github.com/riskibarqy/caddyshack/internal/platform/logging"
	"github.com/riskibarqy/caddyshack/internal/platform/pgdsn"
)

type migrationConfig struct {
	DBURL                   string `env:"DB_URL,required,notEmpty"`
	DBDisablePreparedBinary bool   `env:"DB_DISABLE_PREPARED_BINARY_RESULT" envDefault:"true"`
	MigrationsDir           string `env:"MIGRATIONS_DIR"`
}

var errUsage = errors.New("usage")

// migrator is the subset of *migrate.Migrate the commands drive.
type migrator interface {
	Up() error
	Steps(n int) error
	Version() (uint, bool, error)
	Force(version int) error
	Migrate(version uint) error
	Close() (source error, database error)
}

type openFunc func(cfg migrationConfig) (migrator, string, error)

func main() {
	logger := logging.New(logging.LevelInfo, logging.FormatConsole)

	err := run(os.Args[1:], logger, os.Stdout, openMigrator)
	switch {
	case errors.Is(err, errUsage):
		printUsage()
		_ = logger.Sync()
		os.Exit(2)
	case err != nil:
		logger.Error("migration failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// run always closes the migrator it opened, including on failure.
func run(args []string, logger *logging.Logger, out io.Writer, open openFunc) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd := strings.ToLower(strings.TrimSpace(args[0]))
	switch cmd {
	case "up", "down", "version", "force", "goto", "migrate":
	default:
		return errUsage
	}

	cfg, err := env.ParseAs[migrationConfig]()
	if err != nil {
		return fmt.Errorf("load migration config: %w", err)
	}

	m, source, err := open(cfg)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer closeMigrator(logger, m)

	return execute(m, cmd, args[1:], logger, out, source)
}

func execute(m migrator, cmd string, args []string, logger *logging.Logger, out io.Writer, source string) error {
	switch cmd {
	case "up":
		if err := migrationErr(logger, m.Up()); err != nil {
			return err
		}
		logger.Info("migrations applied", "source", source)
	case "down":
		steps, err := parseSteps(args)
		if err != nil {
			return fmt.Errorf("parse down steps: %w", err)
		}
		if err := migrationErr(logger, m.Steps(-steps)); err != nil {
			return err
		}
		logger.Info("migrations rolled back", "steps", steps)
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			_, _ = fmt.Fprintln(out, "version: none")
			_, _ = fmt.Fprintln(out, "dirty: false")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read version: %w", err)
		}
		_, _ = fmt.Fprintf(out, "version: %d\n", version)
		_, _ = fmt.Fprintf(out, "dirty: %t\n", dirty)
	case "force":
		if len(args) == 0 {
			return errors.New("force requires a version argument")
		}
		version, err := parseVersion(args[0])
		if err != nil {
			return fmt.Errorf("parse version: %w", err)
		}
		if err := m.Force(version); err != nil {
			return fmt.Errorf("force version: %w", err)
		}
		logger.Info("forced version", "version", version)
	case "goto", "migrate":
		if len(args) == 0 {
			return errors.New("goto requires a target version argument")
		}
		target, err := parseTarget(args[0])
		if err != nil {
			return fmt.Errorf("parse target: %w", err)
		}
		if err := migrationErr(logger, m.Migrate(target)); err != nil {
			return err
		}
		logger.Info("migrated", "version", target)
	default:
		return errUsage
	}
	return nil
}

func openMigrator(cfg migrationConfig) (migrator, string, error) {
	m, source, err := newMigrator(cfg)
	if err != nil {
		return nil, "", err
	}
	return m, source, nil
}

// newMigrator prefers a migrations directory on disk and falls back to the
// copy embedded in the binary.
func newMigrator(cfg migrationConfig) (*migrate.Migrate, string, error) {
	dbURL := pgdsn.Normalize(cfg.DBURL, cfg.DBDisablePreparedBinary)

	if dir, ok := resolveMigrationsDir(cfg.MigrationsDir); ok {
		sourceURL := "file://" + filepath.ToSlash(dir)
		m, err := migrate.New(sourceURL, dbURL)
		return m, sourceURL, err
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, "", fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	return m, "embedded", err
}

func resolveMigrationsDir(configured string) (string, bool) {
	candidates := []string{
		strings.TrimSpace(configured),
		"./db/migrations",
		"/app/db/migrations",
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, true
	}
	return "", false
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}
	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < -1 {
		return 0, fmt.Errorf("version must be >= -1")
	}
	return value, nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(value), nil
}

// migrationErr treats ErrNoChange as success.
func migrationErr(logger *logging.Logger, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return fmt.Errorf("run migration: %w", err)
}

func closeMigrator(logger *logging.Logger, m migrator) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db", "error", dbErr)
	}
}

func printUsage() {
	fmt.Println("usage: go run ./cmd/migration <up|down [steps]|version|force <version>|goto <version>>")
}
