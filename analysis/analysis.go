// Package analysis runs post-build diagnostics over a finished account
// graph: access-loop detection, self/duplicate dependencies and orphaned
// vertices. The heavy lifting is delegated to the lvlath graph library;
// this package only maps the findings back to account-graph terms.
package analysis

import (
	"fmt"
	"strings"

	"github.com/SamJakob/agtool2/graph"
)

// Severity classifies a diagnostic.
type Severity int

const (
	// Error means the graph is structurally unsound.
	Error Severity = iota
	// Warning means the graph is usable but probably not intended.
	Warning
	// Info is an observation, not a problem.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single finding from one rule.
type Diagnostic struct {
	Rule     string   // rule identifier (e.g. "dependency_cycle")
	Severity Severity
	Message  string
	Vertex   string // related vertex name (optional)
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.Vertex != "" {
		fmt.Fprintf(&b, " (vertex: %s)", d.Vertex)
	}
	return b.String()
}

// Rule is a single analysis rule applied to a built graph.
type Rule interface {
	Name() string
	Apply(g *graph.Graph) []Diagnostic
}

// Validate runs all built-in rules (plus any extra rules) against the
// graph and returns every diagnostic regardless of severity.
func Validate(g *graph.Graph, extra ...Rule) []Diagnostic {
	rules := builtInRules()
	rules = append(rules, extra...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(g)...)
	}
	return diagnostics
}

// HasErrors reports whether any diagnostic has Error severity.
func HasErrors(diagnostics []Diagnostic) bool {
	for _, d := range diagnostics {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

func builtInRules() []Rule {
	return []Rule{
		selfDependencyRule{},
		dependencyCycleRule{},
		duplicateDependencyRule{},
		orphanVertexRule{},
	}
}
