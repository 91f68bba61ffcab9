package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	adkagent "google.golang.org/adk/agent"
	"google.golang.org/adk/artifact"
	"google.golang.org/adk/cmd/launcher"
	"google.golang.org/adk/server/adkrest"
	adksession "google.golang.org/adk/session"
)

const runtimePrefix = "/api"

// RuntimeHandler serves the ADK REST API (apps, sessions, run, run_sse) for
// the agents in loader, under /api. Sessions live in memory.
type RuntimeHandler struct {
	api http.Handler
}

func NewRuntimeHandler(loader adkagent.Loader) *RuntimeHandler {
	return &RuntimeHandler{
		api: adkrest.NewHandler(&launcher.Config{
			SessionService:  adksession.InMemoryService(),
			ArtifactService: artifact.InMemoryService(),
			AgentLoader:     loader,
		}),
	}
}

func (h *RuntimeHandler) RegisterRoutes(router *mux.Router) {
	router.PathPrefix(runtimePrefix + "/").Handler(http.StripPrefix(runtimePrefix, h.api))
}
