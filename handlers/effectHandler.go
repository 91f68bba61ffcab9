package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"tutoragents/models"
	"tutoragents/platform/logger"

	"github.com/gorilla/mux"
)

const maxEffectsPerPoll = 500

type EffectLister interface {
	ListEffects(ctx context.Context, agent string, since time.Time, limit int) ([]*models.UIEffect, error)
}

type EffectHandler struct {
	effects EffectLister
	log     *logger.Logger
}

func NewEffectHandler(effects EffectLister, log *logger.Logger) *EffectHandler {
	return &EffectHandler{effects: effects, log: logger.OrNop(log)}
}

func (h *EffectHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/effects", h.ListEffects).Methods("GET")
	router.HandleFunc("/agents/{name}/effects", h.ListEffects).Methods("GET")
}

// ListEffects lets a UI poll the outbox: ?since=<RFC3339> returns only newer
// effects, ?limit caps the page.
func (h *EffectHandler) ListEffects(w http.ResponseWriter, r *http.Request) {
	agentName := mux.Vars(r)["name"]
	query := r.URL.Query()

	var since time.Time
	if raw := query.Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid since timestamp")
			return
		}
		since = parsed
	}

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = min(parsed, maxEffectsPerPoll)
	}

	effects, err := h.effects.ListEffects(r.Context(), agentName, since, limit)
	if err != nil {
		h.log.Error("failed to list effects", "agent", agentName, "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list effects")
		return
	}
	if effects == nil {
		effects = []*models.UIEffect{}
	}

	writeJSONResponse(w, http.StatusOK, models.EffectListResponse{Effects: effects})
}
