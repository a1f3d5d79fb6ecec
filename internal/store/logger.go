package store

import (
	"context"
	"sync"
)

// WarnFunc is a function that logs warnings.
type WarnFunc func(format string, args ...any)

// LoggingStore wraps a Store and reports failures through warnFunc.
// Errors are still returned; callers that treat persistence as
// best-effort can ignore them without losing visibility.
type LoggingStore struct {
	Store
	warnFunc WarnFunc
	mu       sync.Mutex
	warned   map[string]bool // Rate-limit warnings by operation type
}

// NewLoggingStore creates a new LoggingStore wrapper.
func NewLoggingStore(store Store, warnFunc WarnFunc) *LoggingStore {
	return &LoggingStore{
		Store:    store,
		warnFunc: warnFunc,
		warned:   make(map[string]bool),
	}
}

// logOnce logs a warning only once per operation type to avoid spamming.
func (s *LoggingStore) logOnce(op string, err error) {
	if err == nil || s.warnFunc == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.warned[op] {
		return
	}
	s.warned[op] = true
	s.warnFunc("store %s failed: %v", op, err)
}

// Get wraps Store.Get with error logging.
func (s *LoggingStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := s.Store.Get(ctx, key)
	s.logOnce("Get", err)
	return v, ok, err
}

// Set wraps Store.Set with error logging.
func (s *LoggingStore) Set(ctx context.Context, key, value string) error {
	err := s.Store.Set(ctx, key, value)
	s.logOnce("Set", err)
	return err
}

// Remove wraps Store.Remove with error logging.
func (s *LoggingStore) Remove(ctx context.Context, key string) error {
	err := s.Store.Remove(ctx, key)
	s.logOnce("Remove", err)
	return err
}

// Unwrap returns the wrapped Store.
func (s *LoggingStore) Unwrap() Store {
	return s.Store
}
