package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"tutoragents/models"
	"tutoragents/platform/logger"
	"tutoragents/services/agent"
	"tutoragents/services/tools"

	"github.com/gorilla/mux"
	"github.com/samber/lo"
)

const maxToolInputBytes = 1 << 20

type AgentHandler struct {
	service *agent.Service
	log     *logger.Logger
}

func NewAgentHandler(service *agent.Service, log *logger.Logger) *AgentHandler {
	return &AgentHandler{service: service, log: logger.OrNop(log)}
}

func (h *AgentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/agents", h.ListAgents).Methods("GET")
	router.HandleFunc("/agents/{name}", h.GetAgent).Methods("GET")
	router.HandleFunc("/agents/{name}/tools/{tool}", h.CallTool).Methods("POST")
}

func (h *AgentHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	summaries := lo.Map(h.service.Agents(), func(d *agent.Descriptor, _ int) models.AgentSummary {
		return d.Summary()
	})
	writeJSONResponse(w, http.StatusOK, models.AgentListResponse{Agents: summaries})
}

func (h *AgentHandler) GetAgent(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	d, err := h.service.Agent(name)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSONResponse(w, http.StatusOK, d.Detail())
}

// CallTool runs one tool call. Validation failures are normal results and
// come back as 200 with success=false.
func (h *AgentHandler) CallTool(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name, toolName := vars["name"], vars["tool"]
	log := h.log.With("agent", name, "tool", toolName)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxToolInputBytes))
	if err != nil {
		log.Error("failed to read tool input", "error", err)
		writeErrorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if len(body) > 0 && !json.Valid(body) {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := h.service.Call(r.Context(), name, toolName, string(body))
	switch {
	case errors.Is(err, agent.ErrAgentNotFound), errors.Is(err, agent.ErrToolNotFound):
		writeErrorResponse(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, tools.ErrInvalidInput):
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Error("tool call failed", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSONResponse(w, http.StatusOK, result)
}
