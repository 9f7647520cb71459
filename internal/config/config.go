// Package config resolves where and how makan persists its state.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/faizmokh/makan/internal/files"
	"github.com/faizmokh/makan/internal/store"
)

// Environment variables read by Load.
const (
	EnvStore   = "MAKAN_STORE"
	EnvDSN     = "MAKAN_DSN"
	EnvAPIAddr = "MAKAN_API_ADDR"
)

// DefaultAPIAddr is where `makan serve` listens unless overridden.
const DefaultAPIAddr = "127.0.0.1:7474"

// StoreKind selects a persistence backend.
type StoreKind string

const (
	StoreFile     StoreKind = "file"
	StoreSQLite   StoreKind = "sqlite"
	StorePostgres StoreKind = "postgres"
	StoreMemory   StoreKind = "memory"
)

// ParseStoreKind accepts a backend name. Empty means file.
func ParseStoreKind(value string) (StoreKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "file", "json":
		return StoreFile, nil
	case "sqlite", "sqlite3":
		return StoreSQLite, nil
	case "postgres", "postgresql", "pg":
		return StorePostgres, nil
	case "memory", "mem":
		return StoreMemory, nil
	default:
		return "", fmt.Errorf("unknown store %q (expected file|sqlite|postgres|memory)", value)
	}
}

// Config is the resolved runtime configuration.
type Config struct {
	Files   *files.Manager
	Store   StoreKind
	DSN     string
	APIAddr string
}

// Load reads .env from the working directory, resolves the data directory,
// then reads <home>/.env. Variables already in the environment win.
// An empty home falls back to MAKAN_HOME or ~/.makan.
func Load(home string) (*Config, error) {
	if err := loadDotenv(".env"); err != nil {
		return nil, err
	}
	manager, err := files.NewManager(home)
	if err != nil {
		return nil, fmt.Errorf("resolve data directory: %w", err)
	}
	if err := loadDotenv(manager.EnvPath()); err != nil {
		return nil, err
	}

	kind, err := ParseStoreKind(os.Getenv(EnvStore))
	if err != nil {
		return nil, err
	}
	addr := strings.TrimSpace(os.Getenv(EnvAPIAddr))
	if addr == "" {
		addr = DefaultAPIAddr
	}
	return &Config{
		Files:   manager,
		Store:   kind,
		DSN:     strings.TrimSpace(os.Getenv(EnvDSN)),
		APIAddr: addr,
	}, nil
}

func loadDotenv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// OpenStore builds the configured backend. The caller closes it.
func (c *Config) OpenStore(ctx context.Context, logger *log.Logger) (store.Backend, error) {
	switch c.Store {
	case StoreFile, "":
		if err := c.Files.EnsureDir(); err != nil {
			return nil, err
		}
		return store.NewFile(c.Files), nil
	case StoreSQLite:
		path := strings.TrimPrefix(c.DSN, "sqlite://")
		if path == "" {
			path = c.Files.DatabasePath()
		}
		return store.OpenSQLite(ctx, path, logger)
	case StorePostgres:
		if c.DSN == "" {
			return nil, fmt.Errorf("store postgres: %s is required", EnvDSN)
		}
		return store.OpenPostgres(ctx, c.DSN)
	case StoreMemory:
		return store.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store %q", c.Store)
	}
}
