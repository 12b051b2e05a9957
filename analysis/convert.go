package analysis

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"

	"github.com/SamJakob/agtool2/graph"
)

// ToCore converts an account graph into a directed lvlath graph with one
// edge per dependency relationship, suitable for the lvlath algorithm
// packages. Edge metadata (labels, group ids) is not carried over.
func ToCore(g *graph.Graph) *core.Graph {
	cg := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	for _, name := range g.Names() {
		// AddVertex only fails on an empty ID, which Build never emits.
		_ = cg.AddVertex(name)
	}
	for _, v := range g.Vertices() {
		for _, e := range v.Edges {
			_, _ = cg.AddEdge(e.Dependency.Name, v.Name, 0)
		}
	}
	return cg
}

// DependencyOrder returns the vertex names in an order where every
// dependency precedes its dependents. Returns an error when the access
// graph contains a loop.
func DependencyOrder(g *graph.Graph) ([]string, error) {
	order, err := dfs.TopologicalSort(ToCore(g))
	if err != nil {
		return nil, fmt.Errorf("ordering access dependencies: %w", err)
	}
	return order, nil
}
