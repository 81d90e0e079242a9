package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hollis7/weka/internal/config"
	"github.com/hollis7/weka/internal/store"
)

// App bundles the loaded configuration with the embedded migration
// files. The audit store is opened on demand: most commands never touch
// it and must not create a database as a side effect.
type App struct {
	Config     *config.Config
	Migrations fs.FS
}

func NewApp(cfg *config.Config, migrationsFS fs.FS) *App {
	return &App{Config: cfg, Migrations: migrationsFS}
}

// AuditPath resolves the audit database path: an explicit override wins
// over the configured default. Empty means auditing is off.
func (a *App) AuditPath(override string) (string, error) {
	path := override
	if path == "" {
		path = a.Config.Audit.Path
	}
	if path == "" {
		return "", nil
	}
	return ExpandPath(path)
}

// OpenAudit opens (creating and migrating if needed) the audit store at
// path. The returned cleanup closes it.
func (a *App) OpenAudit(path string) (*store.Store, func(), error) {
	st, err := store.NewStore(path, a.Migrations)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open audit database: %w", err)
	}

	cleanup := func() {
		if err := st.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing audit database: %v\n", err)
		}
	}
	return st, cleanup, nil
}

// DataDir returns the per-user directory weka keeps its config in.
func DataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".weka"), nil
	}

	return filepath.Join(configDir, "weka"), nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
