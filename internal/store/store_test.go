package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, ContentKey); err != nil || ok {
		t.Fatalf("Get on empty store = ok=%v err=%v, want ok=false err=nil", ok, err)
	}

	if err := s.Set(ctx, ContentKey, "# Title\n\n- a"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := s.Get(ctx, ContentKey)
	if err != nil || !ok {
		t.Fatalf("Get after Set = ok=%v err=%v", ok, err)
	}
	if got != "# Title\n\n- a" {
		t.Fatalf("Get = %q, want %q", got, "# Title\n\n- a")
	}

	if err := s.Set(ctx, ContentKey, ""); err != nil {
		t.Fatalf("Set empty: %v", err)
	}
	got, ok, err = s.Get(ctx, ContentKey)
	if err != nil || !ok || got != "" {
		t.Fatalf("Get after empty Set = %q ok=%v err=%v, want empty stored value", got, ok, err)
	}

	if err := s.Remove(ctx, ContentKey); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := s.Get(ctx, ContentKey); ok {
		t.Fatal("value still present after Remove")
	}
	if err := s.Remove(ctx, ContentKey); err != nil {
		t.Fatalf("Remove of missing key: %v", err)
	}
}

func TestSQLiteStore(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	s, err := NewSQLiteStore(DefaultConfig())
	if err != nil {
		t.Fatalf("failed to create sqlite store: %v", err)
	}
	defer s.Close()

	exerciseStore(t, s)

	dbPath, _ := GetDBPath()
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected database at %s: %v", dbPath, err)
	}
}

func TestSQLiteStoreCustomPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "custom", "pad.db")

	s, err := NewSQLiteStore(Config{Path: dbPath})
	if err != nil {
		t.Fatalf("failed to create sqlite store: %v", err)
	}
	if err := s.Set(context.Background(), ContentKey, "persisted"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	s.Close()

	reopened, err := NewSQLiteStore(Config{Path: dbPath})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get(context.Background(), ContentKey)
	if err != nil || !ok || got != "persisted" {
		t.Fatalf("Get after reopen = %q ok=%v err=%v", got, ok, err)
	}
	if _, ok, err := reopened.UpdatedAt(context.Background(), ContentKey); err != nil || !ok {
		t.Fatalf("UpdatedAt = ok=%v err=%v", ok, err)
	}
}

func TestSQLiteStoreRecordsSchemaVersion(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fresh.db")

	for i := 0; i < 2; i++ {
		s, err := NewSQLiteStore(Config{Path: dbPath})
		if err != nil {
			t.Fatalf("open store (pass %d): %v", i, err)
		}
		var rows, version int
		if err := s.db.QueryRow("SELECT COUNT(*), MAX(version) FROM schema_version").Scan(&rows, &version); err != nil {
			t.Fatalf("read schema version: %v", err)
		}
		s.Close()
		if rows != 1 || version != schemaVersion {
			t.Fatalf("pass %d: schema_version rows=%d version=%d, want 1 row at %d", i, rows, version, schemaVersion)
		}
	}
}

func TestRunMigrationsSkipsApplied(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "m.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(`CREATE TABLE schema_version (version INTEGER NOT NULL); INSERT INTO schema_version VALUES (1)`); err != nil {
		t.Fatalf("seed schema_version: %v", err)
	}

	var ran []int
	step := func(v int) migration {
		return migration{version: v, description: fmt.Sprintf("step %d", v), up: func(*sql.DB) error {
			ran = append(ran, v)
			return nil
		}}
	}
	if err := runMigrations(db, []migration{step(1), step(2), step(3)}, 1); err != nil {
		t.Fatalf("runMigrations: %v", err)
	}
	if fmt.Sprint(ran) != "[2 3]" {
		t.Fatalf("ran = %v, want [2 3]", ran)
	}
	var version int
	if err := db.QueryRow("SELECT version FROM schema_version").Scan(&version); err != nil || version != 3 {
		t.Fatalf("version = %d err=%v, want 3", version, err)
	}

	failing := migration{version: 4, description: "broken", up: func(*sql.DB) error { return errors.New("boom") }}
	if err := runMigrations(db, []migration{failing}, 3); err == nil || !strings.Contains(err.Error(), "migration 4 (broken)") {
		t.Fatalf("err = %v, want migration 4 failure", err)
	}
}

func TestLastSaved(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	sq, err := NewSQLiteStore(Config{Path: filepath.Join(dir, "pad.db")})
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer sq.Close()
	fs, err := NewFileStore(Config{Path: filepath.Join(dir, "content")})
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	tests := []struct {
		name       string
		store      Store
		timestamps bool
	}{
		{"sqlite", sq, true},
		{"file", fs, true},
		{"logging sqlite", NewLoggingStore(sq, nil), true},
		{"memory", NewMemoryStore(), false},
		{"logging memory", NewLoggingStore(NewMemoryStore(), nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "k-" + strings.ReplaceAll(tt.name, " ", "-")
			if _, ok, err := LastSaved(ctx, tt.store, key); err != nil || ok {
				t.Fatalf("before Set: ok=%v err=%v", ok, err)
			}
			before := time.Now().Add(-time.Minute)
			if err := tt.store.Set(ctx, key, "v"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			at, ok, err := LastSaved(ctx, tt.store, key)
			if err != nil || ok != tt.timestamps {
				t.Fatalf("after Set: ok=%v err=%v, want ok=%v", ok, err, tt.timestamps)
			}
			if ok && at.Before(before) {
				t.Fatalf("LastSaved = %v, want after %v", at, before)
			}
		})
	}
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "content")
	s, err := NewFileStore(Config{Backend: BackendFile, Path: dir})
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer s.Close()

	exerciseStore(t, s)

	if err := s.Set(context.Background(), ContentKey, "x"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tmp-") {
			t.Fatalf("temp file %s left behind", e.Name())
		}
	}
	if len(entries) != 1 || entries[0].Name() != ContentKey+".md" {
		t.Fatalf("entries = %v, want single %s.md", entries, ContentKey)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestNewStoreBackends(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	tests := []struct {
		backend string
		want    string
	}{
		{"", "*store.SQLiteStore"},
		{BackendSQLite, "*store.SQLiteStore"},
		{BackendFile, "*store.FileStore"},
		{BackendMemory, "*store.MemoryStore"},
	}
	for _, tt := range tests {
		s, err := NewStore(Config{Backend: tt.backend})
		if err != nil {
			t.Fatalf("NewStore(%q): %v", tt.backend, err)
		}
		if got := fmt.Sprintf("%T", s); got != tt.want {
			t.Errorf("NewStore(%q) = %s, want %s", tt.backend, got, tt.want)
		}
		s.Close()
	}

	if _, err := NewStore(Config{Backend: "redis"}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

type failingStore struct{ *MemoryStore }

func (f *failingStore) Set(ctx context.Context, key, value string) error {
	return errors.New("disk full")
}

func TestLoggingStoreWarnsOncePerOperation(t *testing.T) {
	var warnings []string
	s := NewLoggingStore(&failingStore{NewMemoryStore()}, func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	})

	for i := 0; i < 3; i++ {
		if err := s.Set(context.Background(), ContentKey, "x"); err == nil {
			t.Fatal("expected Set error to propagate")
		}
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
	}
	if warnings[0] != "store Set failed: disk full" {
		t.Fatalf("warning = %q", warnings[0])
	}
}
