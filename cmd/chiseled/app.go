package main

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"chiseled/cmd/chiseled/tui"
	"chiseled/internal/generate"
	"chiseled/internal/llm"
	"chiseled/internal/store"
	"chiseled/internal/video"
)

// cmdContext is the lifetime context for command execution.
func cmdContext() context.Context {
	return context.Background()
}

// buildApp wires the generation pipeline and stores from the loaded config.
// The cleanup function closes the history database.
func buildApp() (*tui.App, func(), error) {
	if cfg.GeminiAPIKey == "" {
		return nil, nil, fmt.Errorf("no Gemini API key: set GEMINI_API_KEY or pass --api-key")
	}

	client, err := llm.NewGemini(cmdContext(), cfg.GeminiAPIKey, cfg.Model, logger)
	if err != nil {
		return nil, nil, err
	}

	prompts, err := generate.LoadPrompts(filepath.Join(cfg.DataDir, "prompts.yaml"))
	if err != nil {
		return nil, nil, err
	}

	videos := video.NewLookup(cfg.YouTubeAPIKey, logger)
	gen := generate.NewGenerator(client, videos, prompts, logger)
	st := store.New(cfg.DataDir, logger)

	history, err := store.OpenHistory(cfg.DataDir)
	if err != nil {
		logger.Warn("history database unavailable", zap.Error(err))
		history = nil
	}

	cleanup := func() {
		if history != nil {
			_ = history.Close()
		}
	}

	return &tui.App{
		Generator: gen,
		Store:     st,
		History:   history,
		Logger:    logger,
		Timeout:   timeout,
	}, cleanup, nil
}
