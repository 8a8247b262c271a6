package pool

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/daniel/course-recommender/internal/schemas"
	"github.com/daniel/course-recommender/internal/types"
)

// CandidateSchemaPath is the repo-relative path of the catalog schema.
const CandidateSchemaPath = "schemas/candidates.schema.json"

// catalogDocument is the on-disk shape of an external candidate catalog.
type catalogDocument struct {
	Candidates []types.CandidateOpportunity `json:"candidates"`
}

// FileSource serves candidates from a JSON catalog file supplied by an
// operator. The file is validated against the candidate schema and loaded
// once at construction; fetches only filter the loaded list.
type FileSource struct {
	name       string
	candidates []types.CandidateOpportunity
}

// NewFileSource loads and validates a candidate catalog file. An empty
// schemaPath resolves the built-in schema relative to the working directory;
// validation is skipped when no schema can be found.
func NewFileSource(path, schemaPath string) (*FileSource, error) {
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(CandidateSchemaPath)
	}
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("candidate catalog %s: %w", path, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate catalog: %w", err)
	}

	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse candidate catalog %s: %w", path, err)
	}

	return &FileSource{name: "file:" + path, candidates: doc.Candidates}, nil
}

// Name identifies the source.
func (s *FileSource) Name() string { return s.name }

// Fetch returns the loaded candidates whose title or skills mention any of
// the keywords; with no keywords the whole catalog is returned.
func (s *FileSource) Fetch(_ context.Context, keywords []string) ([]types.CandidateOpportunity, error) {
	if len(keywords) == 0 {
		return s.candidates, nil
	}

	var out []types.CandidateOpportunity
	for _, candidate := range s.candidates {
		if matchesAny(candidate, keywords) {
			out = append(out, candidate)
		}
	}
	return out, nil
}

func matchesAny(candidate types.CandidateOpportunity, keywords []string) bool {
	title := strings.ToLower(candidate.Title)
	for _, kw := range keywords {
		kwLower := strings.ToLower(kw)
		if strings.Contains(title, kwLower) {
			return true
		}
		for _, skill := range candidate.Skills {
			if strings.Contains(strings.ToLower(skill), kwLower) {
				return true
			}
		}
	}
	return false
}
