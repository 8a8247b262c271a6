package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/course-recommender/internal/scoring"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"port": 9090,
		"candidates_limit": 20,
		"weights": {"semantic": 0.4, "graph": 0.3, "keyword": 0.2, "profile": 0.1}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 20, cfg.CandidatesLimit)
	assert.InDelta(t, 0.4, cfg.Weights.Semantic, 1e-9)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"port": `)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestFromEnv_FillsUnsetFieldsOnly(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := Config{GeminiAPIKey: "file-key"}
	cfg.FromEnv()

	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, "file-key", cfg.GeminiAPIKey)
}

func TestValidate_PortRange(t *testing.T) {
	cfg := Config{Port: -1}
	assert.Error(t, cfg.Validate())

	cfg = Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg = Config{Port: 8080}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_NegativeValuesRejected(t *testing.T) {
	cfg := Config{CandidatesLimit: -1}
	assert.Error(t, cfg.Validate())

	cfg = Config{Weights: scoring.Weights{Semantic: -0.1}}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingCandidatesFile(t *testing.T) {
	cfg := Config{CandidatesFile: filepath.Join(t.TempDir(), "nope.json")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsUnsetFields(t *testing.T) {
	cfg := Config{Port: 9090}

	merged := cfg.MergeWithDefaults(Config{Port: 8080, EmbeddingModel: "text-embedding-004"})

	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "text-embedding-004", merged.EmbeddingModel)
}

func TestMergeWithDefaults_ZeroWeightsFallBack(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})

	assert.Equal(t, scoring.DefaultWeights(), merged.Weights)
}

func TestMergeWithDefaults_ExplicitWeightsKept(t *testing.T) {
	custom := scoring.Weights{Semantic: 0.7, Graph: 0.1, Keyword: 0.1, Profile: 0.1}

	merged := (&Config{Weights: custom}).MergeWithDefaults(Config{})

	assert.Equal(t, custom, merged.Weights)
}
