package commands

import (
	"errors"

	"graphlens/domain/graph"
)

// LoadGraphCommand replaces the stored graph snapshot with a new
// payload. Ingest is whole-graph replacement, never partial mutation:
// the visualization pipeline derives everything from one immutable
// snapshot at a time.
type LoadGraphCommand struct {
	Payload *graph.Payload `json:"payload"`
	Source  string         `json:"source"`
}

// Validate validates the command
func (c LoadGraphCommand) Validate() error {
	if c.Payload == nil {
		return errors.New("payload is required")
	}
	if len(c.Payload.Nodes) == 0 {
		return errors.New("payload must contain at least one node")
	}
	return nil
}
