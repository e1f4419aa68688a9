package graph

import "strings"

// NodeType categorizes a node for visual encoding
type NodeType string

const (
	TypePerson       NodeType = "person"
	TypeOrganization NodeType = "organization"
	TypeTechnology   NodeType = "technology"
	TypeOther        NodeType = "other"
)

// ParseNodeType maps a raw type string to a known NodeType.
// Unknown or empty types collapse to TypeOther rather than failing,
// matching how upstream entity extraction leaves gaps.
func ParseNodeType(raw string) NodeType {
	switch NodeType(strings.ToLower(strings.TrimSpace(raw))) {
	case TypePerson:
		return TypePerson
	case TypeOrganization:
		return TypeOrganization
	case TypeTechnology:
		return TypeTechnology
	default:
		return TypeOther
	}
}

// Node is an entity in the knowledge graph.
// ID is the case-normalized identity key edges join on; it need not
// equal Label.
type Node struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Type        NodeType `json:"type"`
	Description string   `json:"description,omitempty"`
}

// Edge is a relationship between two nodes, referenced by ID.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight,omitempty"`
	Type   string  `json:"type,omitempty"`
}

// NormalizeID canonicalizes a node identifier for joining.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
