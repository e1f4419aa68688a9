// Package memory backs the graph repository port with an in-process
// snapshot store. Durable storage is an external collaborator of this
// system; the engine only ever needs the latest resolved snapshot.
package memory

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"graphlens/domain/graph"
	pkgerrors "graphlens/pkg/errors"
)

// GraphRepository holds the committed snapshot behind an RWMutex. The
// single writer is the load command; readers are query handlers.
type GraphRepository struct {
	mu       sync.RWMutex
	snapshot *graph.Snapshot
	logger   *zap.Logger
}

// NewGraphRepository creates an empty repository.
func NewGraphRepository(logger *zap.Logger) *GraphRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GraphRepository{logger: logger}
}

// Current returns the committed snapshot.
func (r *GraphRepository) Current(ctx context.Context) (*graph.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.snapshot == nil {
		return nil, pkgerrors.NewNotFoundError("graph snapshot")
	}
	return r.snapshot, nil
}

// Replace commits a new snapshot.
func (r *GraphRepository) Replace(ctx context.Context, snapshot *graph.Snapshot) error {
	if snapshot == nil || snapshot.Model == nil {
		return pkgerrors.NewValidationError("snapshot must carry a model")
	}

	r.mu.Lock()
	r.snapshot = snapshot
	r.mu.Unlock()

	r.logger.Info("Graph snapshot replaced",
		zap.String("snapshot_id", snapshot.ID),
		zap.String("source", snapshot.Source),
		zap.Bool("degraded", snapshot.Degraded),
		zap.Int("nodes", snapshot.Model.NodeCount()),
		zap.Int("edges", snapshot.Model.EdgeCount()),
	)
	return nil
}
