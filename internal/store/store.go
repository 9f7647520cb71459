// Package store persists the tracker state as a single opaque blob under a
// fixed key. Backends only move bytes; encoding lives in the ledger package.
package store

import (
	"context"
	"errors"
)

// Key names the one blob every backend holds.
const Key = "makan.state.v1"

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("state not found")

// Store loads and saves the state blob.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Backend is a Store holding resources that must be released.
type Backend interface {
	Store
	Close() error
}
