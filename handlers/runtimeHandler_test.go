package handlers

import (
	"context"
	"encoding/json"
	"iter"
	"net/http"
	"path/filepath"
	"testing"

	"tutoragents/services/agent"
	"tutoragents/services/problems"
	"tutoragents/services/session"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/adk/model"
)

type silentLLM struct{}

func (silentLLM) Name() string { return "silent" }

func (silentLLM) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	return func(yield func(*model.LLMResponse, error) bool) {}
}

func TestRuntimeListApps(t *testing.T) {
	catalog, err := problems.NewCatalog(filepath.Join("..", "data"), 0, nil)
	require.NoError(t, err)
	service, err := agent.FromPlan(session.DefaultPlan(), catalog, "", nil, nil)
	require.NoError(t, err)

	loader, err := service.NewADKLoader(silentLLM{})
	require.NoError(t, err)

	router := mux.NewRouter()
	NewRuntimeHandler(loader).RegisterRoutes(router)

	rec := serve(router, http.MethodGet, "/api/list-apps", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var apps []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apps))
	assert.Equal(t, []string{agent.SessionAgentName}, apps)
}
