// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/daniel/course-recommender/internal/scoring"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP port for serve mode
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the profile store

	// Embedding
	GeminiAPIKey   string `json:"gemini_api_key,omitempty"`  // Enables the remote embedding encoder
	EmbeddingModel string `json:"embedding_model,omitempty"` // Gemini embedding model name

	// Candidate pool
	CandidatesFile  string `json:"candidates_file,omitempty"`  // Optional external candidate catalog (JSON)
	CandidatesLimit int    `json:"candidates_limit,omitempty"` // Cap on candidates per ranking request

	// Scoring weights; zero values fall back to the standard defaults.
	Weights scoring.Weights `json:"weights,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills unset fields from environment variables.
func (c *Config) FromEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.EmbeddingModel == "" {
		c.EmbeddingModel = os.Getenv("EMBEDDING_MODEL")
	}
	if c.CandidatesFile == "" {
		c.CandidatesFile = os.Getenv("CANDIDATES_FILE")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.CandidatesLimit < 0 {
		return fmt.Errorf("config error: 'candidates_limit' must be non-negative")
	}
	if w := c.Weights; w.Semantic < 0 || w.Graph < 0 || w.Keyword < 0 || w.Profile < 0 {
		return fmt.Errorf("config error: score weights must be non-negative")
	}
	if c.CandidatesFile != "" {
		if _, err := os.Stat(c.CandidatesFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: candidates file not found: %s", c.CandidatesFile)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.CandidatesFile == "" {
		result.CandidatesFile = defaults.CandidatesFile
	}
	if result.CandidatesLimit == 0 {
		result.CandidatesLimit = defaults.CandidatesLimit
	}

	zero := scoring.Weights{}
	if result.Weights == zero {
		if defaults.Weights != zero {
			result.Weights = defaults.Weights
		} else {
			result.Weights = scoring.DefaultWeights()
		}
	}

	return result
}
