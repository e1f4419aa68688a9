package rest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"graphlens/infrastructure/config"
	"graphlens/infrastructure/di"
	"graphlens/interfaces/http/rest"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := zap.NewNop()
	graphRepo := di.ProvideGraphRepository(logger)
	commandBus := di.ProvideCommandBus(graphRepo, logger)
	queryBus := di.ProvideQueryBus(graphRepo, logger)

	router := rest.NewRouter(commandBus, queryBus, logger, []string{"http://localhost:3000"})
	return router.Setup()
}

func TestHealthEndpoint(t *testing.T) {
	handler := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetGraphDataServesFixtureWhenEmpty(t *testing.T) {
	handler := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/graph-data", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Nodes []struct {
			ID    string `json:"id"`
			Label string `json:"label"`
			Type  string `json:"type"`
		} `json:"nodes"`
		Edges      []json.RawMessage `json:"edges"`
		TotalNodes int               `json:"total_nodes"`
		TotalEdges int               `json:"total_edges"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Len(t, body.Nodes, 8)
	assert.Len(t, body.Edges, 6)
	assert.Equal(t, 8, body.TotalNodes)
	assert.Equal(t, 6, body.TotalEdges)
}

func TestLoadThenGetGraphData(t *testing.T) {
	handler := setupRouter(t)

	payload := map[string]interface{}{
		"nodes": []map[string]interface{}{
			{"id": "A", "label": "Alpha", "type": "person"},
			{"id": "B", "label": "Beta", "type": "technology"},
		},
		"edges": []map[string]interface{}{
			{"source": "A", "target": "B", "weight": 0.9},
		},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	postReq := httptest.NewRequest(http.MethodPost, "/graph-data", bytes.NewReader(raw))
	postReq.Header.Set("Content-Type", "application/json")
	postRec := httptest.NewRecorder()
	handler.ServeHTTP(postRec, postReq)
	require.Equal(t, http.StatusAccepted, postRec.Code)

	getReq := httptest.NewRequest(http.MethodGet, "/graph-data", nil)
	getRec := httptest.NewRecorder()
	handler.ServeHTTP(getRec, getReq)
	require.Equal(t, http.StatusOK, getRec.Code)

	var body struct {
		Nodes      []json.RawMessage `json:"nodes"`
		TotalNodes int               `json:"total_nodes"`
	}
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &body))
	assert.Len(t, body.Nodes, 2)
	assert.Equal(t, 2, body.TotalNodes)
}

func TestViewSettingsServesDefaultsWithoutSource(t *testing.T) {
	handler := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/view-settings", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var settings config.ViewSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.False(t, settings.DarkMode)
	assert.Equal(t, 1, settings.HopDepth)
	assert.Equal(t, 1.0, settings.Scale)
}

func TestViewSettingsServesLiveSource(t *testing.T) {
	logger := zap.NewNop()
	graphRepo := di.ProvideGraphRepository(logger)
	commandBus := di.ProvideCommandBus(graphRepo, logger)
	queryBus := di.ProvideQueryBus(graphRepo, logger)

	current := &config.ViewSettings{DarkMode: true, HopDepth: 2, Scale: 1}
	router := rest.NewRouter(commandBus, queryBus, logger, []string{"http://localhost:3000"}).
		WithViewSettings(func() *config.ViewSettings { return current })
	handler := router.Setup()

	req := httptest.NewRequest(http.MethodGet, "/view-settings", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var settings config.ViewSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.True(t, settings.DarkMode)
	assert.Equal(t, 2, settings.HopDepth)
}

func TestLoadGraphDataRejectsGarbage(t *testing.T) {
	handler := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/graph-data", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoadGraphDataRejectsEmptyPayload(t *testing.T) {
	handler := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/graph-data", bytes.NewReader([]byte(`{"nodes":[],"edges":[]}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
