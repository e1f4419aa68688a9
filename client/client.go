// Package client fetches the graph payload from a graph-data endpoint.
// This is the engine's only asynchronous boundary: everything after the
// fetch is synchronous. A failed fetch never leaves the caller without
// a model; it deterministically falls back to the built-in fixture.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"graphlens/domain/graph"
	pkgerrors "graphlens/pkg/errors"
)

// DefaultTimeout bounds a graph-data fetch.
const DefaultTimeout = 10 * time.Second

// Client fetches graph payloads over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a client for the given base URL. A zero timeout uses
// DefaultTimeout.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchGraph GETs /graph-data and loads it into a model. On any
// network, status or parse failure it logs the cause and returns the
// fixture model with degraded=true. The caller always gets a usable
// model and never an error.
func (c *Client) FetchGraph(ctx context.Context) (model *graph.Model, degraded bool) {
	payload, err := c.fetchPayload(ctx)
	if err != nil {
		c.logger.Warn("Graph fetch failed, serving fixture graph", zap.Error(err))
		return graph.Fixture(), true
	}

	model, err = graph.Load(payload, c.logger)
	if err != nil {
		c.logger.Warn("Graph payload unusable, serving fixture graph", zap.Error(err))
		return graph.Fixture(), true
	}

	return model, false
}

func (c *Client) fetchPayload(ctx context.Context) (*graph.Payload, error) {
	url := c.baseURL + "/graph-data"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pkgerrors.NewFetchError("building graph-data request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.NewFetchError("requesting graph-data", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, pkgerrors.NewFetchError(
			fmt.Sprintf("graph-data returned status %d", resp.StatusCode), nil)
	}

	var payload graph.Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, pkgerrors.NewFetchError("decoding graph-data response", err)
	}

	return &payload, nil
}
