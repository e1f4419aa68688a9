package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"graphlens/application/commands"
	cmdbus "graphlens/application/commands/bus"
	"graphlens/application/ports"
	"graphlens/domain/graph"
)

// LoadGraphHandler ingests a payload into the graph repository.
type LoadGraphHandler struct {
	graphRepo ports.GraphRepository
	logger    *zap.Logger
}

// NewLoadGraphHandler creates a new load graph handler
func NewLoadGraphHandler(graphRepo ports.GraphRepository, logger *zap.Logger) *LoadGraphHandler {
	return &LoadGraphHandler{
		graphRepo: graphRepo,
		logger:    logger,
	}
}

// Handle executes the load graph command. Individual malformed records
// are dropped by the model loader; only an unusable payload fails.
func (h *LoadGraphHandler) Handle(ctx context.Context, cmd cmdbus.Command) error {
	loadCmd, ok := cmd.(commands.LoadGraphCommand)
	if !ok {
		return fmt.Errorf("unexpected command type %T", cmd)
	}

	model, err := graph.Load(loadCmd.Payload, h.logger)
	if err != nil {
		return fmt.Errorf("failed to load graph payload: %w", err)
	}

	source := loadCmd.Source
	if source == "" {
		source = "ingest"
	}

	snapshot := graph.NewSnapshot(model, source, false)
	if err := h.graphRepo.Replace(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to commit graph snapshot: %w", err)
	}

	h.logger.Info("Graph ingested",
		zap.String("snapshot_id", snapshot.ID),
		zap.String("source", source),
		zap.Int("nodes", model.NodeCount()),
		zap.Int("edges", model.EdgeCount()),
		zap.Int("dropped_records", model.DroppedRecords()),
	)

	return nil
}
