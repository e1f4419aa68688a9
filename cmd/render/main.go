package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"graphlens/client"
	"graphlens/domain/graph"
	"graphlens/engine"
	"graphlens/infrastructure/persistence/graphml"
	"graphlens/render/png"
	"graphlens/render/svg"

	"go.uber.org/zap"
)

func main() {
	var (
		serverURL = flag.String("server", "", "base URL of a graph server to fetch from")
		input     = flag.String("input", "", "path to a GraphML file to render")
		output    = flag.String("output", "graph.svg", "output file (.svg or .png)")
		width     = flag.Int("width", 1200, "canvas width in pixels")
		height    = flag.Int("height", 800, "canvas height in pixels")
		seed      = flag.Int64("seed", 42, "layout seed")
		search    = flag.String("search", "", "comma-separated search terms to highlight")
		hops      = flag.Int("hops", 1, "neighbor hops included around search matches")
		dark      = flag.Bool("dark", false, "render with the dark theme")
		timeout   = flag.Duration("timeout", client.DefaultTimeout, "server fetch timeout")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	model, err := loadModel(*serverURL, *input, *timeout, logger)
	if err != nil {
		logger.Fatal("Failed to load graph", zap.Error(err))
	}

	eng := engine.New(engine.Options{
		Width:    float64(*width),
		Height:   float64(*height),
		Seed:     *seed,
		HopDepth: *hops,
		Dark:     *dark,
	}, logger)

	eng.Load(model)
	sc, err := eng.Draw()
	if err != nil {
		logger.Fatal("Failed to build scene", zap.Error(err))
	}

	if *search != "" {
		if _, err := eng.Search(*search); err != nil {
			logger.Fatal("Search failed", zap.Error(err))
		}
	}

	f, err := os.Create(*output)
	if err != nil {
		logger.Fatal("Failed to create output file", zap.Error(err))
	}
	defer f.Close()

	tr := eng.Viewport().Transform()
	switch strings.ToLower(filepath.Ext(*output)) {
	case ".png":
		err = png.Render(f, sc, tr, *width, *height)
	case ".svg":
		err = svg.Render(f, sc, tr, *width, *height)
	default:
		err = fmt.Errorf("unsupported output format %q, want .svg or .png", filepath.Ext(*output))
	}
	if err != nil {
		logger.Fatal("Render failed", zap.Error(err))
	}

	logger.Info("Rendered graph",
		zap.String("output", *output),
		zap.Int("nodes", model.NodeCount()),
		zap.Int("edges", model.EdgeCount()),
	)
}

// loadModel resolves the graph source: a server fetch when -server is
// set, a GraphML file when -input is set, the fixture otherwise.
func loadModel(serverURL, input string, timeout time.Duration, logger *zap.Logger) (*graph.Model, error) {
	switch {
	case serverURL != "":
		c := client.New(serverURL, timeout, logger)
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		model, degraded := c.FetchGraph(ctx)
		if degraded {
			logger.Warn("Server unavailable, rendering fixture graph",
				zap.String("server", serverURL),
			)
		}
		return model, nil

	case input != "":
		payload, err := graphml.ParseFile(input)
		if err != nil {
			return nil, err
		}
		return graph.Load(payload, logger)

	default:
		return graph.Fixture(), nil
	}
}
