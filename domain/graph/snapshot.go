package graph

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot pairs a loaded model with identity and provenance. Replacing
// the stored snapshot is the only mutation the persistence layer knows;
// the model inside is immutable.
type Snapshot struct {
	ID       string
	Model    *Model
	Source   string
	Degraded bool
	LoadedAt time.Time
}

// NewSnapshot wraps a model with a fresh identifier.
func NewSnapshot(model *Model, source string, degraded bool) *Snapshot {
	return &Snapshot{
		ID:       uuid.New().String(),
		Model:    model,
		Source:   source,
		Degraded: degraded,
		LoadedAt: time.Now().UTC(),
	}
}
