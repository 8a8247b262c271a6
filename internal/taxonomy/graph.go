// Package taxonomy provides the directed knowledge graph connecting courses,
// skills, technologies, and career paths used for relevance and learning-path
// computations. The graph is built once at startup and is read-only afterwards.
package taxonomy

import (
	"errors"
	"sort"
	"strings"
)

// NodeType classifies a taxonomy node.
type NodeType string

// Node types.
const (
	NodeCourse     NodeType = "course"
	NodeSkill      NodeType = "skill"
	NodeTechnology NodeType = "technology"
	NodeCareerPath NodeType = "career_path"
)

// Relation classifies a directed edge.
type Relation string

// Edge relations.
const (
	RelationTeaches      Relation = "teaches"
	RelationUses         Relation = "uses"
	RelationPrerequisite Relation = "prerequisite"
	RelationLeadsTo      Relation = "leads_to"
)

// Edge weights per relation, carried over from the curated graph definition.
// All weights are positive; path length is measured in hops, so the weights
// only matter for neighbor queries and future tuning.
const (
	weightTeaches      = 1.0
	weightUses         = 0.9
	weightPrerequisite = 1.2
	weightLeadsTo      = 0.8
)

// ErrNotFound is returned when a requested node is absent from the graph or
// no directed path exists between two nodes. It is an expected outcome;
// callers should surface it as an empty result.
var ErrNotFound = errors.New("taxonomy: node or path not found")

// Node is a single entry in the taxonomy graph.
type Node struct {
	Key        string
	Type       NodeType
	Difficulty string
}

// Edge is a directed, typed connection between two nodes.
type Edge struct {
	To       string
	Relation Relation
	Weight   float64
}

// Graph is a directed graph over normalized string keys. It is safe for
// concurrent reads once built; Build is the only mutator.
type Graph struct {
	nodes map[string]Node
	edges map[string][]Edge
}

// NormalizeKey case-folds and whitespace-collapses a node key so that
// "Machine Learning" and "machine  learning" resolve to the same node.
func NormalizeKey(key string) string {
	return strings.Join(strings.Fields(strings.ToLower(key)), " ")
}

func newGraph() *Graph {
	return &Graph{
		nodes: make(map[string]Node),
		edges: make(map[string][]Edge),
	}
}

// addNode inserts a node if its key is not already taken. Collision policy is
// first writer wins: an existing node keeps its original type and attributes,
// later inserts only contribute edges.
func (g *Graph) addNode(key string, typ NodeType, difficulty string) string {
	key = NormalizeKey(key)
	if key == "" {
		return key
	}
	if _, ok := g.nodes[key]; !ok {
		g.nodes[key] = Node{Key: key, Type: typ, Difficulty: difficulty}
	}
	return key
}

func (g *Graph) addEdge(from, to string, relation Relation, weight float64) {
	from = NormalizeKey(from)
	to = NormalizeKey(to)
	if from == "" || to == "" {
		return
	}
	for _, e := range g.edges[from] {
		if e.To == to && e.Relation == relation {
			return
		}
	}
	g.edges[from] = append(g.edges[from], Edge{To: to, Relation: relation, Weight: weight})
}

// Contains reports whether the key resolves to a node in the graph.
func (g *Graph) Contains(key string) bool {
	_, ok := g.nodes[NormalizeKey(key)]
	return ok
}

// Node returns the node for key, if present.
func (g *Graph) Node(key string) (Node, bool) {
	n, ok := g.nodes[NormalizeKey(key)]
	return n, ok
}

// Nodes returns all node keys in sorted order. The returned slice is a copy.
// The fixed order keeps float accumulations over the node set reproducible.
func (g *Graph) Nodes() []string {
	keys := make([]string, 0, len(g.nodes))
	for key := range g.nodes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// Neighbors returns the target keys of all outgoing edges from key with the
// given relation. An empty relation matches every edge.
func (g *Graph) Neighbors(key string, relation Relation) []string {
	key = NormalizeKey(key)
	var out []string
	for _, e := range g.edges[key] {
		if relation == "" || e.Relation == relation {
			out = append(out, e.To)
		}
	}
	return out
}

// ShortestPath returns the ordered node keys from a to b, inclusive of both
// endpoints. It returns ErrNotFound when either node is absent or no directed
// path exists. Path length is hop count; cycles are tolerated.
func (g *Graph) ShortestPath(a, b string) ([]string, error) {
	start := NormalizeKey(a)
	goal := NormalizeKey(b)
	if _, ok := g.nodes[start]; !ok {
		return nil, ErrNotFound
	}
	if _, ok := g.nodes[goal]; !ok {
		return nil, ErrNotFound
	}
	if start == goal {
		return []string{start}, nil
	}

	// BFS with predecessor tracking; visited set guards against cycles.
	prev := map[string]string{start: ""}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range g.edges[cur] {
			if _, seen := prev[e.To]; seen {
				continue
			}
			prev[e.To] = cur
			if e.To == goal {
				return reconstructPath(prev, start, goal), nil
			}
			queue = append(queue, e.To)
		}
	}
	return nil, ErrNotFound
}

// ShortestPathLength returns the number of edges on the shortest directed
// path from a to b, or ErrNotFound.
func (g *Graph) ShortestPathLength(a, b string) (int, error) {
	path, err := g.ShortestPath(a, b)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

// PathScore converts the shortest-path hop count from a to b into a
// continuous relevance score in (0,1]: 1/(length+1), so identical nodes score
// 1.0 and longer paths score progressively lower. Returns 0 and ErrNotFound
// when no path exists.
func (g *Graph) PathScore(a, b string) (float64, error) {
	length, err := g.ShortestPathLength(a, b)
	if err != nil {
		return 0, err
	}
	return 1.0 / float64(length+1), nil
}

func reconstructPath(prev map[string]string, start, goal string) []string {
	var reversed []string
	for cur := goal; cur != ""; cur = prev[cur] {
		reversed = append(reversed, cur)
		if cur == start {
			break
		}
	}
	path := make([]string, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}
