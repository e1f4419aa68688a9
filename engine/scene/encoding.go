package scene

// Visual encoding is a presentation policy, not a structural rule, so
// it lives in lookup tables that tests can inspect and hosts can swap.

// NodeStyle drives per-type glyph size and label truncation.
type NodeStyle struct {
	Radius        float64
	MaxLabelChars int
}

// nodeStyles maps node type to glyph style. Persons read largest since
// they anchor the resume graph; long organization names get more label
// room before truncation.
var nodeStyles = map[string]NodeStyle{
	"person":       {Radius: 14, MaxLabelChars: 20},
	"organization": {Radius: 11, MaxLabelChars: 26},
	"technology":   {Radius: 9, MaxLabelChars: 16},
	"other":        {Radius: 7, MaxLabelChars: 14},
}

// defaultNodeStyle covers types absent from the table.
var defaultNodeStyle = NodeStyle{Radius: 7, MaxLabelChars: 14}

// StyleFor returns the visual style for a node type.
func StyleFor(nodeType string) NodeStyle {
	if s, ok := nodeStyles[nodeType]; ok {
		return s
	}
	return defaultNodeStyle
}

// Palette carries every theme-dependent color in one place so a theme
// switch is a pure recolor.
type Palette struct {
	Background       string
	NodeFills        map[string]string
	NodeStroke       string
	EdgeStroke       string
	PersonEdgeStroke string
	LabelFill        string
}

var lightPalette = Palette{
	Background: "#fafafa",
	NodeFills: map[string]string{
		"person":       "#2563eb",
		"organization": "#059669",
		"technology":   "#d97706",
		"other":        "#6b7280",
	},
	NodeStroke:       "#ffffff",
	EdgeStroke:       "#9ca3af",
	PersonEdgeStroke: "#60a5fa",
	LabelFill:        "#111827",
}

var darkPalette = Palette{
	Background: "#111827",
	NodeFills: map[string]string{
		"person":       "#60a5fa",
		"organization": "#34d399",
		"technology":   "#fbbf24",
		"other":        "#9ca3af",
	},
	NodeStroke:       "#1f2937",
	EdgeStroke:       "#4b5563",
	PersonEdgeStroke: "#93c5fd",
	LabelFill:        "#f9fafb",
}

// PaletteFor returns the palette for the given theme flag.
func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

func (p Palette) nodeFill(nodeType string) string {
	if c, ok := p.NodeFills[nodeType]; ok {
		return c
	}
	return p.NodeFills["other"]
}

// Edge stroke widths. Edges touching a person node render thicker and
// tinted so biography connections stand out.
const (
	edgeWidth       = 1.0
	personEdgeWidth = 2.5
)

// Opacity levels for the visibility filter.
const (
	nodeOpacityFull = 1.0
	nodeOpacityDim  = 0.12
	edgeOpacityFull = 0.65
	edgeOpacityDim  = 0.06
)

// TruncateLabel shortens a label to the style's maximum with an
// ellipsis suffix. Truncation is exact: a label at or under the limit
// is returned whole, one over the limit keeps exactly max characters
// plus "...". The underlying label data is never altered.
func TruncateLabel(label string, max int) string {
	runes := []rune(label)
	if len(runes) <= max {
		return label
	}
	return string(runes[:max]) + "..."
}
