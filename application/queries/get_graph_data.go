package queries

// GetGraphDataQuery asks for the full graph payload for visualization.
type GetGraphDataQuery struct{}

// Validate validates the query
func (q GetGraphDataQuery) Validate() error {
	return nil
}

// GraphNode is the wire form of a node in the graph-data response.
type GraphNode struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// GraphEdge is the wire form of an edge in the graph-data response.
type GraphEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
	Type   string  `json:"type,omitempty"`
}

// GetGraphDataResult is the complete graph-data response. TotalNodes
// and TotalEdges mirror the array lengths; they are advisory for
// consumers, which derive real counts from the arrays.
type GetGraphDataResult struct {
	Nodes      []GraphNode `json:"nodes"`
	Edges      []GraphEdge `json:"edges"`
	TotalNodes int         `json:"total_nodes"`
	TotalEdges int         `json:"total_edges"`
}
