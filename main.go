// File: goodfoods/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"goodfoods/config"
	"goodfoods/cron"
	"goodfoods/database"
	catalogRepo "goodfoods/database/repository/catalog"
	ledgerRepo "goodfoods/database/repository/ledger"
	"goodfoods/handlers"
	"goodfoods/llm"
	"goodfoods/llm/gemini"
	"goodfoods/llm/openrouter"
	"goodfoods/middleware"
	"goodfoods/routes"
	"goodfoods/services/agent"
	"goodfoods/services/session"
	"goodfoods/services/tools"
	"goodfoods/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDataFiles()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalog := catalogRepo.NewFileCatalogRepo()
	ledger := ledgerRepo.NewFileLedgerRepo()

	// tools.
	registry := tools.NewRegistry()
	registry.Register(tools.NewSearchRestaurantsTool(catalog))
	registry.Register(tools.NewCheckAvailabilityTool(catalog, ledger))
	registry.Register(tools.NewBookTableTool(catalog, ledger))

	// LLM provider and session store.
	provider := buildProvider()
	store, redisClients := buildSessionStore()
	cron.InitSessionSweeper(store, time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute)

	agentSvc := agent.NewDefaultAgentService(provider, registry, store)
	agentSvc.HistoryTurns = config.AppConfig.MaxHistoryTurns

	chatHandler := handlers.NewChatHandler(agentSvc)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateChatSession: chatHandler.CreateSession,
		PostChatMessage:   chatHandler.PostMessage,
		GetChatSession:    chatHandler.GetSession,
		DeleteChatSession: chatHandler.DeleteSession,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(redisClients, config.AppConfig.CatalogPath, config.AppConfig.LedgerPath)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// buildProvider selects the configured LLM backend.
func buildProvider() llm.Provider {
	cfg := llm.Config{Model: config.AppConfig.LLMModel}
	switch config.AppConfig.LLMProvider {
	case "gemini":
		cfg.APIKey = config.AppConfig.GeminiAPIKey
		return gemini.NewProvider(cfg)
	default:
		cfg.APIKey = config.AppConfig.OpenRouterAPIKey
		cfg.BaseURL = config.AppConfig.OpenRouterBaseURL
		return openrouter.NewProvider(cfg)
	}
}

// buildSessionStore selects the configured session backend and reports
// any Redis clients for health monitoring.
func buildSessionStore() (session.Store, []*redis.Client) {
	ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	if config.AppConfig.SessionStore == "redis" {
		client := utils.GetSessionCacheClient()
		return session.NewRedisStore(client, ttl), []*redis.Client{client}
	}
	return session.NewMemoryStore(ttl), nil
}
