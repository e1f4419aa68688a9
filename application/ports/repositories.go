// Package ports defines the interfaces the application layer depends
// on. Infrastructure implements them; handlers never see a concrete
// store.
package ports

import (
	"context"

	"graphlens/domain/graph"
)

// GraphRepository stores the current graph snapshot. The model is
// write-once-replace, read-many: Replace swaps the whole snapshot and
// Current reads whatever is committed.
type GraphRepository interface {
	// Current returns the committed snapshot, or a not-found error when
	// nothing has been loaded yet.
	Current(ctx context.Context) (*graph.Snapshot, error)

	// Replace commits a new snapshot, invalidating the previous one.
	Replace(ctx context.Context, snapshot *graph.Snapshot) error
}
