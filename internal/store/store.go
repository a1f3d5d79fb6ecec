// Package store persists the editor buffer under a fixed key.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ContentKey is the key the editor buffer is saved under.
const ContentKey = "markdownContent"

// Store is a minimal string key-value store.
type Store interface {
	// Get returns the value for key. ok is false when nothing is stored,
	// which is not an error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error

	// Lifecycle
	Close() error
}

// Timestamped is implemented by stores that record when a key was written.
type Timestamped interface {
	UpdatedAt(ctx context.Context, key string) (time.Time, bool, error)
}

// LastSaved reports when key was last written to s, looking through
// wrappers that expose Unwrap. ok is false when the key is missing or the
// backend keeps no timestamps.
func LastSaved(ctx context.Context, s Store, key string) (t time.Time, ok bool, err error) {
	for s != nil {
		if ts, isTS := s.(Timestamped); isTS {
			return ts.UpdatedAt(ctx, key)
		}
		u, isWrapper := s.(interface{ Unwrap() Store })
		if !isWrapper {
			break
		}
		s = u.Unwrap()
	}
	return time.Time{}, false, nil
}

// Backend names accepted in Config.Backend.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config holds storage configuration.
type Config struct {
	Backend string `mapstructure:"backend"` // sqlite, file or memory
	Path    string `mapstructure:"path"`    // Override database file or directory
}

// DefaultConfig returns the default storage configuration.
func DefaultConfig() Config {
	return Config{Backend: BackendSQLite}
}

// GetDataDir returns the XDG data directory for mdpad.
// Uses $XDG_DATA_HOME if set, otherwise ~/.local/share
func GetDataDir() (string, error) {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "mdpad"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "mdpad"), nil
}

// GetDBPath returns the path to the sqlite database.
func GetDBPath() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "mdpad.db"), nil
}

// GetFileDir returns the directory used by the file backend.
func GetFileDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "content"), nil
}

// NewStore creates a Store for the configured backend.
func NewStore(cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", BackendSQLite:
		return NewSQLiteStore(cfg)
	case BackendFile:
		return NewFileStore(cfg)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (want sqlite, file or memory)", cfg.Backend)
	}
}
