package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"channelscope-backend/internal/config"
	"channelscope-backend/internal/handlers"
	"channelscope-backend/internal/repository"
	"channelscope-backend/internal/router"
	"channelscope-backend/internal/services"
)

func main() {
	cfg := config.Load()
	log.Printf("✓ Configuration loaded (env: %s)", cfg.Env)

	store := repository.NewStore()
	log.Println("✓ In-memory store initialized")

	ctx := context.Background()

	youtubeService, err := services.NewYouTubeService(ctx, cfg.YouTubeAPIKey, cfg.MaxVideos)
	if err != nil {
		log.Fatalf("✗ Failed to initialize YouTube service: %v", err)
	}
	log.Println("✓ YouTube service initialized")

	geminiService, err := services.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Failed to initialize Gemini service: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini service initialized (model: %s)", cfg.GeminiModel)

	analyzer := services.NewAnalyzerService(store, youtubeService, geminiService, services.RandomTrendEstimator{})
	channelHandler := handlers.NewChannelHandler(analyzer)

	r := router.New(cfg, channelHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan struct{})
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("✗ Server shutdown error: %v", err)
		}
		close(done)
	}()

	log.Printf("✓ Server starting on port %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("✗ Server failed: %v", err)
	}

	<-done
	log.Println("Server stopped")
}
