package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"graphlens/application/commands"
	cmdbus "graphlens/application/commands/bus"
	"graphlens/application/queries"
	querybus "graphlens/application/queries/bus"
	"graphlens/domain/graph"
	"graphlens/pkg/common"
)

// GraphHandler handles graph-data HTTP requests
type GraphHandler struct {
	commandBus *cmdbus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(commandBus *cmdbus.CommandBus, queryBus *querybus.QueryBus, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// GetGraphData handles GET /graph-data. The response is the raw
// visualization payload, not the envelope, because graph clients
// consume {nodes, edges, total_nodes, total_edges} directly.
func (h *GraphHandler) GetGraphData(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetGraphDataQuery{})
	if err != nil {
		h.logger.Error("Failed to get graph data", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, "GRAPH_DATA_FAILED", "Failed to get graph data")
		return
	}

	common.RespondRaw(w, http.StatusOK, result)
}

// LoadGraphData handles POST /graph-data, replacing the stored graph
// snapshot with the posted payload.
func (h *GraphHandler) LoadGraphData(w http.ResponseWriter, r *http.Request) {
	var payload graph.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_PAYLOAD", "Request body is not a graph payload")
		return
	}

	cmd := commands.LoadGraphCommand{
		Payload: &payload,
		Source:  "api",
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to ingest graph payload", zap.Error(err))
		common.RespondError(w, http.StatusBadRequest, "INGEST_FAILED", err.Error())
		return
	}

	common.RespondJSON(w, http.StatusAccepted, map[string]interface{}{
		"nodes": len(payload.Nodes),
		"edges": len(payload.Edges),
	})
}
