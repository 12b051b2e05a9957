package graph

import (
	"fmt"
	"sort"
)

// Graph is the build-once result of reading an account-graph document.
// The vertex set is the single source of truth for membership; iteration
// helpers preserve declaration order for deterministic output.
type Graph struct {
	vertices map[string]*Vertex
	order    []string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{vertices: make(map[string]*Vertex)}
}

// AddVertex inserts a vertex. Adding a second vertex with the same name is
// an error.
func (g *Graph) AddVertex(v *Vertex) error {
	if _, exists := g.vertices[v.Name]; exists {
		return fmt.Errorf("vertex %q already exists in the graph", v.Name)
	}
	g.vertices[v.Name] = v
	g.order = append(g.order, v.Name)
	return nil
}

// VertexByName returns the named vertex, or nil if it is not present.
func (g *Graph) VertexByName(name string) *Vertex {
	return g.vertices[name]
}

// Names returns the vertex names in declaration order.
func (g *Graph) Names() []string {
	names := make([]string, len(g.order))
	copy(names, g.order)
	return names
}

// Vertices returns the vertices in declaration order.
func (g *Graph) Vertices() []*Vertex {
	vertices := make([]*Vertex, 0, len(g.order))
	for _, name := range g.order {
		vertices = append(vertices, g.vertices[name])
	}
	return vertices
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return len(g.vertices)
}

// HasVertices reports whether the graph contains any vertices.
func (g *Graph) HasVertices() bool {
	return len(g.vertices) > 0
}

// HasEdges reports whether any vertex has an incoming edge.
func (g *Graph) HasEdges() bool {
	for _, v := range g.vertices {
		if v.HasDependencies() {
			return true
		}
	}
	return false
}

// Mappings returns the sink-to-sources adjacency: for every vertex with at
// least one incoming edge, its name maps to the ordered edge list.
func (g *Graph) Mappings() map[string][]*Edge {
	mappings := make(map[string][]*Edge)
	for _, v := range g.vertices {
		if v.HasDependencies() {
			mappings[v.Name] = v.Edges
		}
	}
	return mappings
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
