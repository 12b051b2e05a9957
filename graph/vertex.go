package graph

import "strings"

// Vertex is a named node in the access graph: a credential, device,
// account or any other resource. Vertices are identified by name; two
// vertices with the same name are the same vertex.
type Vertex struct {
	// Name is the unique name of the vertex within its graph.
	Name string

	// Type is the classification assigned by a set_types statement
	// (e.g. "device", "password").
	Type string

	// Attributes holds free-form string metadata such as "description".
	Attributes map[string]string

	// Edges are the incoming edges: the access methods for this vertex.
	// Order follows the statements that produced them.
	Edges []*Edge
}

// HasDependencies reports whether any other vertex grants access to this
// one, i.e. whether the vertex has incoming edges.
func (v *Vertex) HasDependencies() bool {
	return len(v.Edges) > 0
}

// Attribute returns the named attribute value and whether it was set.
func (v *Vertex) Attribute(key string) (string, bool) {
	val, ok := v.Attributes[key]
	return val, ok
}

// Incoming maps this vertex's dependencies by name.
func (v *Vertex) Incoming() map[string]*Vertex {
	deps := make(map[string]*Vertex, len(v.Edges))
	for _, e := range v.Edges {
		deps[e.Dependency.Name] = e.Dependency
	}
	return deps
}

func (v *Vertex) String() string {
	var b strings.Builder
	b.WriteString(v.Name)
	b.WriteString(": ")
	b.WriteString(v.Type)
	if len(v.Attributes) > 0 {
		b.WriteString(" (")
		first := true
		for _, key := range sortedKeys(v.Attributes) {
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(key)
			b.WriteString("=")
			b.WriteString(v.Attributes[key])
		}
		b.WriteString(")")
	}
	return b.String()
}

// Edge is a directed "requires" relationship pointing from a dependency
// vertex into the dependent (sink) vertex that owns it. All edges created
// by one statement share a UniqueGroupID, and share a GroupID with the
// other edges of the same statement pointing at the same sink.
type Edge struct {
	// Dependency is the source vertex required for access.
	Dependency *Vertex

	// Label is the optional edge label. Two substrings carry meaning:
	// "rec" marks a recovery method, "invis" hides the edge from output.
	Label string

	// GroupID is unique among the edges of one sink vertex.
	GroupID int

	// UniqueGroupID is unique across the whole graph.
	UniqueGroupID int

	// Conjunction is true when the producing statement listed more than
	// one dependency, meaning all of them are jointly required.
	Conjunction bool
}

// IsRecovery reports whether this edge is a recovery (backup) access
// method rather than a primary one.
func (e *Edge) IsRecovery() bool {
	return strings.Contains(e.Label, "rec")
}

// IsHidden reports whether this edge should be omitted from rendered
// output.
func (e *Edge) IsHidden() bool {
	return strings.Contains(e.Label, "invis")
}

func (e *Edge) String() string {
	label := e.Label
	if label == "rec" {
		label = "Recovery Method"
	}
	if label != "" {
		return e.Dependency.Name + " (" + label + ")"
	}
	return e.Dependency.Name
}
