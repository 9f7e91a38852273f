// Package kv provides the string key-value primitive that every croplog
// component persists through, with file, sqlite, bolt and in-memory backends.
package kv

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// ErrInvalidKey is returned for keys outside [A-Za-z0-9_.-]+.
var ErrInvalidKey = errors.New("invalid key")

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store is closed")

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Store is a string-keyed, string-valued persistence medium.
// Get reports ok=false for a key that was never written.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// ValidateKey checks that key is usable by every backend. The file backend
// uses keys as file names, so path separators and ".." are rejected.
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) || strings.Trim(key, ".") == "" {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// Backends lists the names accepted by Open.
func Backends() []string {
	return []string{BackendFile, BackendSQLite, BackendBolt, BackendMemory}
}

// Open returns the backend named by backend, rooted at dir.
// The memory backend ignores dir.
func Open(ctx context.Context, backend, dir string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return OpenFile(dir)
	case BackendSQLite:
		return OpenSQLite(ctx, dir)
	case BackendBolt:
		return OpenBolt(dir)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (valid: %s)", backend, strings.Join(Backends(), ", "))
	}
}
