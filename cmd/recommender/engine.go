package main

import (
	"context"
	"fmt"
	"log"

	"github.com/daniel/course-recommender/internal/config"
	"github.com/daniel/course-recommender/internal/embedding"
	"github.com/daniel/course-recommender/internal/pool"
	"github.com/daniel/course-recommender/internal/recommender"
)

// buildEngine constructs the recommendation engine from configuration. The
// engine is the process-wide immutable context; everything heavyweight
// (graph, encoder, catalogs) is loaded here, before any request is served.
func buildEngine(ctx context.Context, cfg config.Config) (*recommender.Engine, error) {
	opts := recommender.Options{Weights: cfg.Weights}

	if cfg.GeminiAPIKey != "" {
		encoder, err := embedding.NewGeminiEncoder(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize embedding model: %w", err)
		}
		opts.Encoder = encoder
		log.Println("Using Gemini embedding encoder")
	}

	sources := []pool.Source{pool.NewCourseCatalog(), pool.NewCertificationCatalog()}
	if cfg.CandidatesFile != "" {
		fileSource, err := pool.NewFileSource(cfg.CandidatesFile, "")
		if err != nil {
			return nil, fmt.Errorf("failed to load candidate catalog: %w", err)
		}
		sources = append(sources, fileSource)
	}
	opts.Provider = pool.NewProvider(cfg.CandidatesLimit, sources...)

	return recommender.New(ctx, opts)
}

// loadConfig merges the optional config file, environment, and defaults.
func loadConfig(path string) (config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	cfg.FromEnv()

	merged := cfg.MergeWithDefaults(config.Config{Port: 8080})
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}
