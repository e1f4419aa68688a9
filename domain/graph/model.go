package graph

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	pkgerrors "graphlens/pkg/errors"
)

// DefaultEdgeWeight is assumed when a payload edge carries no weight,
// matching the upstream GraphML export default.
const DefaultEdgeWeight = 0.5

// Payload is the wire shape of a graph data response.
// TotalNodes and TotalEdges are advisory; consumers always derive real
// counts from the arrays.
type Payload struct {
	Nodes      []NodePayload `json:"nodes"`
	Edges      []EdgePayload `json:"edges"`
	TotalNodes int           `json:"total_nodes"`
	TotalEdges int           `json:"total_edges"`
}

// NodePayload is a single node record as received over the wire.
type NodePayload struct {
	ID          string `json:"id" validate:"required"`
	Label       string `json:"label"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// EdgePayload is a single edge record as received over the wire.
type EdgePayload struct {
	Source string   `json:"source" validate:"required"`
	Target string   `json:"target" validate:"required"`
	Weight *float64 `json:"weight,omitempty"`
	Type   string   `json:"type,omitempty"`
}

// Model is an immutable snapshot of the graph for one session.
// It is created once per data load; reloading data replaces the whole
// model and invalidates everything derived from it.
type Model struct {
	nodes    []Node
	edges    []Edge
	resolved []Edge
	byID     map[string]int
	dropped  int
}

var payloadValidator = validator.New()

// Load builds a Model from a payload. Malformed records (missing id,
// source or target) are dropped one at a time and counted; a single bad
// record never aborts the load. Load fails only when the payload itself
// is absent.
func Load(payload *Payload, logger *zap.Logger) (*Model, error) {
	if payload == nil {
		return nil, pkgerrors.NewDataFormatError("payload", "payload is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Model{
		nodes: make([]Node, 0, len(payload.Nodes)),
		edges: make([]Edge, 0, len(payload.Edges)),
		byID:  make(map[string]int, len(payload.Nodes)),
	}

	for i, np := range payload.Nodes {
		if err := payloadValidator.Struct(np); err != nil {
			logger.Warn("Dropping malformed node record",
				zap.Int("index", i),
				zap.Error(pkgerrors.NewDataFormatError("node", "missing id")),
			)
			m.dropped++
			continue
		}

		id := NormalizeID(np.ID)
		if id == "" {
			m.dropped++
			continue
		}
		if _, exists := m.byID[id]; exists {
			logger.Debug("Dropping duplicate node record", zap.String("id", id))
			m.dropped++
			continue
		}

		label := np.Label
		if label == "" {
			label = id
		}

		m.byID[id] = len(m.nodes)
		m.nodes = append(m.nodes, Node{
			ID:          id,
			Label:       label,
			Type:        ParseNodeType(np.Type),
			Description: np.Description,
		})
	}

	for i, ep := range payload.Edges {
		if err := payloadValidator.Struct(ep); err != nil {
			logger.Warn("Dropping malformed edge record",
				zap.Int("index", i),
				zap.Error(pkgerrors.NewDataFormatError("edge", "missing source or target")),
			)
			m.dropped++
			continue
		}

		weight := DefaultEdgeWeight
		if ep.Weight != nil {
			weight = *ep.Weight
		}

		edge := Edge{
			Source: NormalizeID(ep.Source),
			Target: NormalizeID(ep.Target),
			Weight: weight,
			Type:   ep.Type,
		}
		m.edges = append(m.edges, edge)

		// Dangling edges stay in the raw edge list but never reach
		// layout, filtering or rendering.
		if m.HasNode(edge.Source) && m.HasNode(edge.Target) {
			m.resolved = append(m.resolved, edge)
		}
	}

	logger.Info("Graph model loaded",
		zap.Int("nodes", len(m.nodes)),
		zap.Int("edges", len(m.edges)),
		zap.Int("resolved_edges", len(m.resolved)),
		zap.Int("dropped_records", m.dropped),
	)

	return m, nil
}

// NodeCount returns the number of nodes in the snapshot.
func (m *Model) NodeCount() int {
	return len(m.nodes)
}

// EdgeCount returns the number of edges, dangling included.
func (m *Model) EdgeCount() int {
	return len(m.edges)
}

// DroppedRecords returns how many malformed records the load discarded.
func (m *Model) DroppedRecords() int {
	return m.dropped
}

// Nodes returns a copy of the node set in original load order.
func (m *Model) Nodes() []Node {
	out := make([]Node, len(m.nodes))
	copy(out, m.nodes)
	return out
}

// Edges returns a copy of every edge, dangling included.
func (m *Model) Edges() []Edge {
	out := make([]Edge, len(m.edges))
	copy(out, m.edges)
	return out
}

// ResolvedEdges returns a copy of the edges whose endpoints both exist.
// This is the edge set layout, search and rendering operate on.
func (m *Model) ResolvedEdges() []Edge {
	out := make([]Edge, len(m.resolved))
	copy(out, m.resolved)
	return out
}

// HasNode reports whether a node with the given id exists.
func (m *Model) HasNode(id string) bool {
	_, ok := m.byID[id]
	return ok
}

// NodeByID returns the node for an id, if present.
func (m *Model) NodeByID(id string) (Node, bool) {
	idx, ok := m.byID[id]
	if !ok {
		return Node{}, false
	}
	return m.nodes[idx], true
}
