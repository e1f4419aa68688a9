package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"graphlens/application/ports"
	"graphlens/application/queries"
	"graphlens/domain/graph"
	pkgerrors "graphlens/pkg/errors"
)

// GetGraphDataHandler serves graph visualization data from the
// committed snapshot. When nothing has been ingested yet it falls back
// to the fixture graph so clients never see an empty scene by accident.
type GetGraphDataHandler struct {
	graphRepo ports.GraphRepository
	logger    *zap.Logger
}

// NewGetGraphDataHandler creates a new graph data handler
func NewGetGraphDataHandler(graphRepo ports.GraphRepository, logger *zap.Logger) *GetGraphDataHandler {
	return &GetGraphDataHandler{
		graphRepo: graphRepo,
		logger:    logger,
	}
}

// Handle executes the graph data query
func (h *GetGraphDataHandler) Handle(ctx context.Context, query queries.GetGraphDataQuery) (*queries.GetGraphDataResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	snapshot, err := h.graphRepo.Current(ctx)
	if err != nil {
		if !pkgerrors.IsType(err, pkgerrors.ErrorTypeNotFound) {
			return nil, fmt.Errorf("failed to read graph snapshot: %w", err)
		}
		h.logger.Warn("No graph snapshot committed, serving fixture graph")
		snapshot = graph.NewSnapshot(graph.Fixture(), "fixture", true)
	}

	model := snapshot.Model
	result := &queries.GetGraphDataResult{
		Nodes: make([]queries.GraphNode, 0, model.NodeCount()),
		Edges: make([]queries.GraphEdge, 0, model.EdgeCount()),
	}

	for _, n := range model.Nodes() {
		result.Nodes = append(result.Nodes, queries.GraphNode{
			ID:          n.ID,
			Label:       n.Label,
			Type:        string(n.Type),
			Description: n.Description,
		})
	}

	// Every stored edge ships, dangling ones included: dropping those
	// is the consumer's render-time concern, and mirroring the stored
	// data keeps ingest-then-fetch symmetrical.
	for _, e := range model.Edges() {
		result.Edges = append(result.Edges, queries.GraphEdge{
			Source: e.Source,
			Target: e.Target,
			Weight: e.Weight,
			Type:   e.Type,
		})
	}

	result.TotalNodes = len(result.Nodes)
	result.TotalEdges = len(result.Edges)

	h.logger.Debug("Graph data query served",
		zap.String("snapshot_id", snapshot.ID),
		zap.Int("nodes", result.TotalNodes),
		zap.Int("edges", result.TotalEdges),
	)

	return result, nil
}
