// Package svg renders a committed scene to SVG. The backend applies
// primitives as-is: all graph logic (layout, visibility, theme) is
// already baked into the scene, and the viewport transform wraps the
// whole group as a single translate-then-scale.
package svg

import (
	"fmt"
	"io"

	svgo "github.com/ajstarks/svgo"

	"graphlens/engine/scene"
	"graphlens/engine/viewport"
)

// Render writes the scene as an SVG document. The transform is applied
// to the enclosing group, never to individual primitives.
func Render(w io.Writer, s *scene.Scene, tr viewport.Transform, width, height int) error {
	if s == nil {
		return fmt.Errorf("render: nil scene")
	}

	canvas := svgo.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+s.Background)

	canvas.Gtransform(fmt.Sprintf("translate(%.2f,%.2f) scale(%.4f)", tr.PanX, tr.PanY, tr.Scale))

	// Draw order is fixed by the scene: edges under nodes under labels.
	for _, e := range s.Edges {
		canvas.Line(int(e.X1), int(e.Y1), int(e.X2), int(e.Y2),
			fmt.Sprintf("stroke:%s;stroke-width:%.1f;stroke-opacity:%.2f", e.Stroke, e.Width, e.Opacity))
	}

	for _, n := range s.Nodes {
		canvas.Circle(int(n.X), int(n.Y), int(n.Radius),
			fmt.Sprintf("fill:%s;fill-opacity:%.2f;stroke:%s;stroke-width:1.5", n.Fill, n.Opacity, n.Stroke))
	}

	for _, l := range s.Labels {
		canvas.Text(int(l.X), int(l.Y), l.Text,
			fmt.Sprintf("fill:%s;fill-opacity:%.2f;font-size:11px;font-family:system-ui,sans-serif;text-anchor:middle", l.Fill, l.Opacity))
	}

	canvas.Gend()
	canvas.End()
	return nil
}
