// Package png rasterizes a committed scene. Like the SVG backend it
// only applies primitives; the viewport transform is pushed onto the
// drawing context once for the whole scene group.
package png

import (
	"fmt"
	"image/color"
	"io"

	"git.sr.ht/~sbinet/gg"

	"graphlens/engine/scene"
	"graphlens/engine/viewport"
)

// Render rasterizes the scene and writes it PNG-encoded.
func Render(w io.Writer, s *scene.Scene, tr viewport.Transform, width, height int) error {
	if s == nil {
		return fmt.Errorf("render: nil scene")
	}

	dc := gg.NewContext(width, height)

	dc.SetColor(hexColor(s.Background, 1))
	dc.Clear()

	// Translate-then-scale for the whole group.
	dc.Translate(tr.PanX, tr.PanY)
	dc.Scale(tr.Scale, tr.Scale)

	for _, e := range s.Edges {
		dc.SetColor(hexColor(e.Stroke, e.Opacity))
		dc.SetLineWidth(e.Width)
		dc.DrawLine(e.X1, e.Y1, e.X2, e.Y2)
		dc.Stroke()
	}

	for _, n := range s.Nodes {
		dc.SetColor(hexColor(n.Fill, n.Opacity))
		dc.DrawCircle(n.X, n.Y, n.Radius)
		dc.Fill()

		dc.SetColor(hexColor(n.Stroke, n.Opacity))
		dc.SetLineWidth(1.5)
		dc.DrawCircle(n.X, n.Y, n.Radius)
		dc.Stroke()
	}

	for _, l := range s.Labels {
		dc.SetColor(hexColor(l.Fill, l.Opacity))
		dc.DrawStringAnchored(l.Text, l.X, l.Y, 0.5, 0.5)
	}

	return dc.EncodePNG(w)
}

// hexColor parses a #rrggbb color and applies an opacity.
func hexColor(hex string, opacity float64) color.Color {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(opacity * 255)}
}
