// Package scene materializes a laid-out graph into a retained list of
// drawable primitives. Build is the expensive path and runs once per
// layout; ApplyVisibility and ApplyTheme mutate opacity and color on
// the retained primitives and never touch geometry. Rendering backends
// consume the primitive lists and stay free of graph logic.
package scene

import (
	"graphlens/domain/graph"
	"graphlens/engine/layout"
)

// EdgeLine is a drawable edge primitive.
type EdgeLine struct {
	Source     string
	Target     string
	X1, Y1     float64
	X2, Y2     float64
	Width      float64
	Stroke     string
	Opacity    float64
	PersonLink bool
}

// NodeCircle is a drawable node glyph.
type NodeCircle struct {
	ID      string
	Type    graph.NodeType
	X, Y    float64
	Radius  float64
	Fill    string
	Stroke  string
	Opacity float64
}

// NodeLabel is a drawable label. Text holds the truncated display form;
// FullText preserves the untruncated label for tooltips and backends.
type NodeLabel struct {
	NodeID   string
	X, Y     float64
	Text     string
	FullText string
	Fill     string
	Opacity  float64
}

// Scene is the retained drawable model. Draw order is fixed: edges
// under nodes under labels, so occlusion favors node glyphs.
type Scene struct {
	Edges      []EdgeLine
	Nodes      []NodeCircle
	Labels     []NodeLabel
	Background string

	dark bool
}

// Build materializes positioned nodes and edges into a scene under the
// given theme. Edges referencing a node without a position are dropped
// silently. Geometry computed here is final for the life of the scene.
func Build(positioned []layout.PositionedNode, edges []graph.Edge, dark bool) *Scene {
	palette := PaletteFor(dark)

	pos := make(map[string]layout.PositionedNode, len(positioned))
	personIDs := make(map[string]bool)
	for _, p := range positioned {
		pos[p.ID] = p
		if p.Type == graph.TypePerson {
			personIDs[p.ID] = true
		}
	}

	s := &Scene{
		Background: palette.Background,
		dark:       dark,
	}

	for _, e := range edges {
		from, okFrom := pos[e.Source]
		to, okTo := pos[e.Target]
		if !okFrom || !okTo {
			continue
		}

		personLink := personIDs[e.Source] || personIDs[e.Target]
		width := edgeWidth
		stroke := palette.EdgeStroke
		if personLink {
			width = personEdgeWidth
			stroke = palette.PersonEdgeStroke
		}

		s.Edges = append(s.Edges, EdgeLine{
			Source:     e.Source,
			Target:     e.Target,
			X1:         from.X,
			Y1:         from.Y,
			X2:         to.X,
			Y2:         to.Y,
			Width:      width,
			Stroke:     stroke,
			Opacity:    edgeOpacityFull,
			PersonLink: personLink,
		})
	}

	for _, p := range positioned {
		style := StyleFor(string(p.Type))

		s.Nodes = append(s.Nodes, NodeCircle{
			ID:      p.ID,
			Type:    p.Type,
			X:       p.X,
			Y:       p.Y,
			Radius:  style.Radius,
			Fill:    palette.nodeFill(string(p.Type)),
			Stroke:  palette.NodeStroke,
			Opacity: nodeOpacityFull,
		})

		s.Labels = append(s.Labels, NodeLabel{
			NodeID:   p.ID,
			X:        p.X,
			Y:        p.Y + style.Radius + 14,
			Text:     TruncateLabel(p.Label, style.MaxLabelChars),
			FullText: p.Label,
			Fill:     palette.LabelFill,
			Opacity:  nodeOpacityFull,
		})
	}

	return s
}

// ApplyVisibility dims primitives outside the visible set. A nil set
// restores full visibility: blank search text means "show everything",
// not "show nothing". Only opacity changes; geometry and color stay
// untouched. An edge stays bright only when both endpoints are visible.
func (s *Scene) ApplyVisibility(visible map[string]bool) {
	nodeOpacity := func(id string) float64 {
		if visible == nil || visible[id] {
			return nodeOpacityFull
		}
		return nodeOpacityDim
	}

	for i := range s.Nodes {
		s.Nodes[i].Opacity = nodeOpacity(s.Nodes[i].ID)
	}
	for i := range s.Labels {
		s.Labels[i].Opacity = nodeOpacity(s.Labels[i].NodeID)
	}
	for i := range s.Edges {
		e := &s.Edges[i]
		if visible == nil || (visible[e.Source] && visible[e.Target]) {
			e.Opacity = edgeOpacityFull
		} else {
			e.Opacity = edgeOpacityDim
		}
	}
}

// ApplyTheme recolors the retained primitives for a dark or light
// theme. Positions, radii, widths and opacity are untouched.
func (s *Scene) ApplyTheme(dark bool) {
	if dark == s.dark {
		return
	}
	s.dark = dark
	palette := PaletteFor(dark)

	s.Background = palette.Background
	for i := range s.Edges {
		if s.Edges[i].PersonLink {
			s.Edges[i].Stroke = palette.PersonEdgeStroke
		} else {
			s.Edges[i].Stroke = palette.EdgeStroke
		}
	}
	for i := range s.Nodes {
		s.Nodes[i].Fill = palette.nodeFill(string(s.Nodes[i].Type))
		s.Nodes[i].Stroke = palette.NodeStroke
	}
	for i := range s.Labels {
		s.Labels[i].Fill = palette.LabelFill
	}
}

// Dark reports the currently applied theme.
func (s *Scene) Dark() bool {
	return s.dark
}
