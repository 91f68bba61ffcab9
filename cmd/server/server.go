package main

import (
	"context"
	"net/http"

	"tutoragents/config"
	"tutoragents/db"
	"tutoragents/handlers"
	"tutoragents/platform/logger"
	"tutoragents/services/agent"
	"tutoragents/services/problems"
	"tutoragents/services/session"
	"tutoragents/services/tools"

	"github.com/gorilla/mux"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/genai"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	plan, err := session.LoadPlan(cfg.SessionFile)
	if err != nil {
		log.Fatal("failed to load session plan", "file", cfg.SessionFile, "error", err)
	}

	catalog, err := problems.NewCatalog(cfg.DataDir, problems.DefaultCacheSize, log)
	if err != nil {
		log.Fatal("failed to open problem catalog", "dir", cfg.DataDir, "error", err)
	}

	var (
		hook          tools.EffectHook = tools.NewLogHook(log)
		effectHandler *handlers.EffectHandler
	)
	if cfg.DatabaseURL != "" {
		effectRepo, err := db.NewPostgresEffectRepository(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("failed to initialize effect database", "error", err)
		}
		defer effectRepo.Close()

		if err := effectRepo.EnsureSchema(context.Background()); err != nil {
			log.Fatal("failed to prepare effect table", "error", err)
		}
		hook = tools.Chain(hook, tools.NewOutboxHook(effectRepo))
		effectHandler = handlers.NewEffectHandler(effectRepo, log)
		log.Info("effect outbox enabled")
	}

	agentService, err := agent.FromPlan(plan, catalog, cfg.Model, hook, log)
	if err != nil {
		log.Fatal("failed to build tutoring agents", "error", err)
	}

	var runtimeHandler *handlers.RuntimeHandler
	if cfg.GoogleAPIKey != "" {
		llm, err := gemini.NewModel(context.Background(), cfg.Model, &genai.ClientConfig{
			APIKey:  cfg.GoogleAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			log.Fatal("failed to create gemini model", "model", cfg.Model, "error", err)
		}
		loader, err := agentService.NewADKLoader(llm)
		if err != nil {
			log.Fatal("failed to bind agents to the runtime", "error", err)
		}
		runtimeHandler = handlers.NewRuntimeHandler(loader)
		log.Info("runtime agents ready", "app", loader.RootAgent().Name(), "model", llm.Name())
	} else {
		log.Warn("GOOGLE_API_KEY not set, serving descriptors and tool calls only")
	}

	agentHandler := handlers.NewAgentHandler(agentService, log)
	problemHandler := handlers.NewProblemHandler(catalog, log)

	router := mux.NewRouter()

	router.Use(corsMiddleware)
	router.Use(jsonMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	agentHandler.RegisterRoutes(router)
	problemHandler.RegisterRoutes(router)
	if effectHandler != nil {
		effectHandler.RegisterRoutes(router)
	}
	if runtimeHandler != nil {
		runtimeHandler.RegisterRoutes(router)
	}

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	addr := ":" + cfg.Port
	log.Info("server starting", "port", cfg.Port, "agents", len(agentService.Agents()))

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("server failed to start", "error", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
