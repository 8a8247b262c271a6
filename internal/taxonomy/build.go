package taxonomy

import "sort"

// CourseEntry describes one curated course and its relationships, the raw
// material the graph is built from.
type CourseEntry struct {
	Skills        []string
	Technologies  []string
	Prerequisites []string
	LeadsTo       []string
	Difficulty    string
}

// Build constructs the taxonomy graph from a curated course table. For each
// course it adds a course node, teaches-edges to its skills, uses-edges to its
// technologies, prerequisite-edges from each prerequisite course, and
// leads_to-edges to career-path nodes. Construction is deterministic: the
// same table always produces the same graph. Course names are inserted before
// any skill, technology, or career node, so a name that is both a course and
// another entry's target always types as a course.
func Build(table map[string]CourseEntry) *Graph {
	g := newGraph()

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		g.addNode(name, NodeCourse, table[name].Difficulty)
	}

	for _, name := range names {
		entry := table[name]
		course := NormalizeKey(name)

		for _, skill := range entry.Skills {
			key := g.addNode(skill, NodeSkill, "")
			g.addEdge(course, key, RelationTeaches, weightTeaches)
		}
		for _, tech := range entry.Technologies {
			key := g.addNode(tech, NodeTechnology, "")
			g.addEdge(course, key, RelationUses, weightUses)
		}
		for _, next := range entry.LeadsTo {
			key := g.addNode(next, NodeCareerPath, "")
			g.addEdge(course, key, RelationLeadsTo, weightLeadsTo)
		}
	}

	// Prerequisite edges last so they only point at known nodes.
	for _, name := range names {
		course := NormalizeKey(name)
		for _, prereq := range table[name].Prerequisites {
			if g.Contains(prereq) {
				g.addEdge(prereq, course, RelationPrerequisite, weightPrerequisite)
			}
		}
	}

	return g
}

// Default builds the graph from the built-in curated course table.
func Default() *Graph {
	return Build(courseTable)
}
