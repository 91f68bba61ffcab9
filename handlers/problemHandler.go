package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"tutoragents/models"
	"tutoragents/platform/logger"
	"tutoragents/services/problems"

	"github.com/gorilla/mux"
)

type ProblemCatalog interface {
	List() ([]models.ProblemSummary, error)
	Search(query string) ([]models.ProblemSummary, error)
	Get(id string) (*models.ProblemDocument, error)
}

type ProblemHandler struct {
	catalog ProblemCatalog
	log     *logger.Logger
}

func NewProblemHandler(catalog ProblemCatalog, log *logger.Logger) *ProblemHandler {
	return &ProblemHandler{catalog: catalog, log: logger.OrNop(log)}
}

func (h *ProblemHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/problems", h.ListProblems).Methods("GET")
	router.HandleFunc("/problems/{id}", h.GetProblem).Methods("GET")
}

// ListProblems lists the catalog, or fuzzy-searches it when q is set.
func (h *ProblemHandler) ListProblems(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	var (
		summaries []models.ProblemSummary
		err       error
	)
	if query == "" {
		summaries, err = h.catalog.List()
	} else {
		summaries, err = h.catalog.Search(query)
	}
	if err != nil {
		h.log.Error("failed to list problems", "query", query, "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to list problems")
		return
	}
	if summaries == nil {
		summaries = []models.ProblemSummary{}
	}

	writeJSONResponse(w, http.StatusOK, models.ProblemListResponse{Problems: summaries})
}

func (h *ProblemHandler) GetProblem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	doc, err := h.catalog.Get(id)
	switch {
	case errors.Is(err, problems.ErrDocumentNotFound):
		writeErrorResponse(w, http.StatusNotFound, "Problem not found")
		return
	case errors.Is(err, problems.ErrInvalidID):
		writeErrorResponse(w, http.StatusBadRequest, "Invalid problem ID")
		return
	case err != nil:
		h.log.Error("failed to load problem", "id", id, "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSONResponse(w, http.StatusOK, doc)
}

func writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
