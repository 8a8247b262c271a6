// Package keywords derives normalized keyword sets from a user's enrolled
// courses for matching against the taxonomy and candidate pool.
package keywords

import (
	"sort"
	"strings"

	"github.com/daniel/course-recommender/internal/types"
)

// minTokenLength filters out short stopword-like tokens; tokens must be
// strictly longer than this to become keywords on their own.
const minTokenLength = 3

// Extract turns a list of course records into a deduplicated, sorted set of
// lowercase keywords. Each course contributes its full normalized name plus
// every whitespace token longer than minTokenLength. An empty course list
// yields an empty set.
func Extract(courses []types.CourseRecord) []string {
	seen := make(map[string]struct{})

	for _, course := range courses {
		name := normalize(course.Name)
		if name == "" {
			continue
		}
		seen[name] = struct{}{}

		for _, token := range strings.Fields(name) {
			if len(token) > minTokenLength {
				seen[token] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for kw := range seen {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

// FromNames is a convenience wrapper for callers that only have raw course
// name strings.
func FromNames(names []string) []string {
	courses := make([]types.CourseRecord, 0, len(names))
	for _, name := range names {
		courses = append(courses, types.CourseRecord{Name: name})
	}
	return Extract(courses)
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
