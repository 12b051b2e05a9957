package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlath/dfs"

	"github.com/SamJakob/agtool2/graph"
)

// self_dependency: a vertex that requires itself can never be accessed.
type selfDependencyRule struct{}

func (selfDependencyRule) Name() string { return "self_dependency" }

func (selfDependencyRule) Apply(g *graph.Graph) []Diagnostic {
	var diags []Diagnostic
	for _, v := range g.Vertices() {
		for _, e := range v.Edges {
			if e.Dependency.Name == v.Name {
				diags = append(diags, Diagnostic{
					Rule:     "self_dependency",
					Severity: Error,
					Message:  fmt.Sprintf("%q depends on itself", v.Name),
					Vertex:   v.Name,
				})
			}
		}
	}
	return diags
}

// dependency_cycle: an access loop means no vertex in the loop is
// independently reachable. Detection is delegated to lvlath's DFS.
type dependencyCycleRule struct{}

func (dependencyCycleRule) Name() string { return "dependency_cycle" }

func (dependencyCycleRule) Apply(g *graph.Graph) []Diagnostic {
	found, cycles, err := dfs.DetectCycles(ToCore(g))
	if err != nil {
		return []Diagnostic{{
			Rule:     "dependency_cycle",
			Severity: Warning,
			Message:  fmt.Sprintf("cycle detection failed: %v", err),
		}}
	}
	if !found {
		return nil
	}

	diags := make([]Diagnostic, 0, len(cycles))
	for _, cycle := range cycles {
		// Self-loops are reported separately by self_dependency.
		if len(cycle) < 2 {
			continue
		}
		diags = append(diags, Diagnostic{
			Rule:     "dependency_cycle",
			Severity: Warning,
			Message:  fmt.Sprintf("access loop: %s -> %s", strings.Join(cycle, " -> "), cycle[0]),
			Vertex:   cycle[0],
		})
	}
	return diags
}

// duplicate_dependency: the same dependency listed for the same sink by
// more than one statement. Legal, but usually a copy-paste mistake.
type duplicateDependencyRule struct{}

func (duplicateDependencyRule) Name() string { return "duplicate_dependency" }

func (duplicateDependencyRule) Apply(g *graph.Graph) []Diagnostic {
	var diags []Diagnostic
	for _, v := range g.Vertices() {
		groups := make(map[string]map[int]bool)
		for _, e := range v.Edges {
			dep := e.Dependency.Name
			if groups[dep] == nil {
				groups[dep] = make(map[int]bool)
			}
			groups[dep][e.UniqueGroupID] = true
		}
		for _, dep := range sortedGroupKeys(groups) {
			if len(groups[dep]) > 1 {
				diags = append(diags, Diagnostic{
					Rule:     "duplicate_dependency",
					Severity: Warning,
					Message:  fmt.Sprintf("%q is required by %q in %d separate statements", dep, v.Name, len(groups[dep])),
					Vertex:   v.Name,
				})
			}
		}
	}
	return diags
}

// orphan_vertex: a vertex with no edges in either direction contributes
// nothing to the rendered graph.
type orphanVertexRule struct{}

func (orphanVertexRule) Name() string { return "orphan_vertex" }

func (orphanVertexRule) Apply(g *graph.Graph) []Diagnostic {
	dependencies := make(map[string]bool)
	for _, v := range g.Vertices() {
		for _, e := range v.Edges {
			dependencies[e.Dependency.Name] = true
		}
	}

	var diags []Diagnostic
	for _, v := range g.Vertices() {
		if !v.HasDependencies() && !dependencies[v.Name] {
			diags = append(diags, Diagnostic{
				Rule:     "orphan_vertex",
				Severity: Info,
				Message:  fmt.Sprintf("%q has no edges", v.Name),
				Vertex:   v.Name,
			})
		}
	}
	return diags
}

func sortedGroupKeys(m map[string]map[int]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
