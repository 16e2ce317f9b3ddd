package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"agentic-backend/internal/agent"
	"agentic-backend/internal/config"
	"agentic-backend/internal/handlers"
	"agentic-backend/internal/router"
	"agentic-backend/internal/services"
	"agentic-backend/internal/tracing"
)

func main() {
	log.Println("🚀 Starting Agentic Backend...")

	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	shutdownTracing := tracing.Init(cfg.TracingEnabled, cfg.TracingProject, cfg.TracingEndpoint)

	geminiService, err := services.NewGeminiService(cfg.GoogleAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini client initialized (model: %s)", cfg.GeminiModel)

	catalogService := services.NewCatalogService(cfg.CatalogBaseURL)
	log.Printf("✓ Catalog client ready (%s)", cfg.CatalogBaseURL)

	supportAgent := agent.New(geminiService, catalogService)
	chatHandler := handlers.NewChatHandler(supportAgent)

	var handler http.Handler = router.New(chatHandler, cfg.AllowedOrigin)
	if cfg.TracingEnabled {
		handler = otelhttp.NewHandler(handler, "server")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
		shutdownTracing(ctx)
	}()

	log.Printf("✓ Agentic Backend ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
