// Package engine wires the graph visualization pipeline: load a model,
// lay it out once, build the retained scene, then serve the cheap
// update paths (search visibility, theme, viewport). The engine is
// single-goroutine by contract: the host's event loop calls it, and
// external signals like theme changes are pushed in as explicit calls
// rather than observed from shared state.
package engine

import (
	"go.uber.org/zap"

	"graphlens/domain/graph"
	"graphlens/engine/layout"
	"graphlens/engine/scene"
	"graphlens/engine/search"
	"graphlens/engine/viewport"
	pkgerrors "graphlens/pkg/errors"
)

// Options configures the pipeline for one engine instance.
type Options struct {
	Width    float64
	Height   float64
	Seed     int64
	HopDepth int
	Dark     bool
}

// Engine owns the committed layout and scene for the current model.
// Strict phase ordering holds: Load, then Draw, then any number of
// Search / SetTheme / viewport updates, each independently idempotent.
type Engine struct {
	opts   Options
	logger *zap.Logger

	model     *graph.Model
	positions []layout.PositionedNode
	scene     *scene.Scene
	view      *viewport.Controller
	state     search.State
	dark      bool
	laidOut   bool
}

// New creates an engine. HopDepth below one falls back to the search
// package default.
func New(opts Options, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.HopDepth < 1 {
		opts.HopDepth = search.DefaultHopDepth
	}
	return &Engine{
		opts:   opts,
		logger: logger,
		view:   viewport.NewController(),
		dark:   opts.Dark,
	}
}

// Load commits a new model and invalidates the layout, scene, search
// state and viewport derived from the previous one.
func (e *Engine) Load(m *graph.Model) {
	e.model = m
	e.positions = nil
	e.scene = nil
	e.state = search.State{}
	e.laidOut = false
	e.view.Reset()

	if m != nil {
		e.logger.Info("Model committed to engine",
			zap.Int("nodes", m.NodeCount()),
			zap.Int("edges", m.EdgeCount()),
		)
	}
}

// Draw runs the expensive path: compute the layout (exactly once per
// loaded model) and build the full scene. Calling Draw again without a
// new Load returns the committed scene without recomputing anything.
func (e *Engine) Draw() (*scene.Scene, error) {
	if e.model == nil {
		return nil, pkgerrors.NewInternalError("draw before a model was loaded")
	}

	if !e.laidOut {
		e.positions = layout.Compute(
			e.model.Nodes(),
			e.model.ResolvedEdges(),
			e.opts.Width,
			e.opts.Height,
			e.opts.Seed,
			e.logger,
		)
		e.laidOut = true
		e.scene = scene.Build(e.positions, e.model.ResolvedEdges(), e.dark)
	}

	return e.scene, nil
}

// Search recomputes the visibility set for the given text and applies
// it to the drawn scene. Geometry is untouched; calling Search never
// re-runs the layout.
func (e *Engine) Search(text string) (search.State, error) {
	if e.scene == nil {
		return search.State{}, pkgerrors.NewInternalError("search before the scene was drawn")
	}

	e.state = search.Filter(text, e.model, e.opts.HopDepth)
	if e.state.ShowAll() {
		e.scene.ApplyVisibility(nil)
	} else {
		e.scene.ApplyVisibility(e.state.VisibleIDs)
	}
	return e.state, nil
}

// SetTheme is the pushed theme-change event. The engine reacts to the
// host's dark-mode flag but never owns it.
func (e *Engine) SetTheme(dark bool) {
	e.dark = dark
	if e.scene != nil {
		e.scene.ApplyTheme(dark)
	}
}

// Viewport exposes the pan/zoom controller. Its transform applies to
// the whole scene group and never feeds back into node coordinates.
func (e *Engine) Viewport() *viewport.Controller {
	return e.view
}

// Positions returns the committed layout, empty before Draw.
func (e *Engine) Positions() []layout.PositionedNode {
	return e.positions
}

// Scene returns the committed scene, nil before Draw.
func (e *Engine) Scene() *scene.Scene {
	return e.scene
}

// SearchState returns the last applied search state.
func (e *Engine) SearchState() search.State {
	return e.state
}
