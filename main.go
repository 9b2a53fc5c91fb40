package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"donation-engine/internal/config"
	"donation-engine/internal/engine"
	"donation-engine/internal/handler"
	"donation-engine/internal/narrative"
	"donation-engine/internal/resolver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Logger setup failed: %v", err)
	}
	defer logger.Sync()

	gen, err := narrative.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatal("Gemini client setup failed", zap.Error(err))
	}

	res := resolver.New(gen, cfg.NarrativeTimeout, logger)
	eng := engine.New(res, cfg.Workers, logger)
	h := handler.New(eng, logger)

	logger.Info("donation engine starting",
		zap.String("port", cfg.Port),
		zap.String("model", cfg.GeminiModel),
		zap.Int("workers", cfg.Workers))

	if err := fasthttp.ListenAndServe(":"+cfg.Port, h.Handle); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
