// Package storage persists the whole game state as one JSON document.
//
// Every command is a whole-store read-modify-write; the store serializes
// those behind a single mutex so each command's load-mutate-save runs
// atomically relative to others.
package storage

import (
	"context"

	"github.com/tradi3/chatquest/internal/domain"
)

// Store is the capability each command service depends on.
type Store interface {
	// View runs fn with read access to the snapshot. fn must not mutate.
	View(ctx context.Context, fn func(*domain.Snapshot) error) error

	// Update runs fn with exclusive access and persists the snapshot
	// afterwards. If fn returns an error nothing is saved: mutate-then-save
	// is all-or-nothing per call.
	Update(ctx context.Context, fn func(*domain.Snapshot) error) error
}
