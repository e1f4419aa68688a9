package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetchGraphSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/graph-data", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"nodes": [
				{"id": "a", "label": "Alpha", "type": "person"},
				{"id": "b", "label": "Beta", "type": "technology"}
			],
			"edges": [{"source": "a", "target": "b", "weight": 0.7}],
			"total_nodes": 2,
			"total_edges": 1
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0, zap.NewNop())
	model, degraded := c.FetchGraph(context.Background())

	assert.False(t, degraded)
	assert.Equal(t, 2, model.NodeCount())
	assert.Equal(t, 1, model.EdgeCount())
	assert.True(t, model.HasNode("A"))
}

func TestFetchGraphServerErrorFallsBackToFixture(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 0, zap.NewNop())
	model, degraded := c.FetchGraph(context.Background())

	assert.True(t, degraded)
	assert.Equal(t, 8, model.NodeCount())
	assert.True(t, model.HasNode("ALEX CHEN"))
}

func TestFetchGraphBadJSONFallsBackToFixture(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"nodes": [`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0, zap.NewNop())
	model, degraded := c.FetchGraph(context.Background())

	assert.True(t, degraded)
	assert.Equal(t, 8, model.NodeCount())
}

func TestFetchGraphUnreachableFallsBackToFixture(t *testing.T) {
	c := New("http://127.0.0.1:1", 0, zap.NewNop())
	model, degraded := c.FetchGraph(context.Background())

	assert.True(t, degraded)
	require.NotNil(t, model)
	assert.Equal(t, 8, model.NodeCount())
}
