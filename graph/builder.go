package graph

import (
	"log/slog"
	"strings"

	"github.com/SamJakob/agtool2/agtxt"
)

// BuildOption configures a single Build invocation.
type BuildOption func(*builder)

// WithLogger sets the logger used for non-fatal build warnings. Defaults
// to slog.Default().
func WithLogger(logger *slog.Logger) BuildOption {
	return func(b *builder) { b.logger = logger }
}

// Build walks the parsed statements in order and materializes the graph.
//
// Vertex existence is established by set_types statements; referencing a
// vertex in an edge or attribute statement before its type is declared
// aborts the build with an *UndeclaredVertexError. Full Vertex objects are
// only constructed after the pass completes, so an edge created on line 3
// may point at a vertex whose attributes are set on line 7.
//
// A document with zero statements yields (nil, nil): the distinguished
// "no graph" result, not an error.
func Build(stmts []agtxt.Statement, opts ...BuildOption) (*Graph, error) {
	if len(stmts) == 0 {
		return nil, nil
	}

	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	for _, stmt := range stmts {
		if err := b.process(stmt); err != nil {
			return nil, err
		}
	}
	return b.finish(), nil
}

// pendingEdge is the unhydrated form of an Edge: the dependency is still a
// name because the Vertex objects do not exist until the pass completes.
type pendingEdge struct {
	dependency    string
	label         string
	groupID       int
	uniqueGroupID int
	conjunction   bool
}

// builder holds the running tables threaded through one forward pass.
// All state is local to a single Build call; independent documents can be
// built concurrently.
type builder struct {
	logger *slog.Logger

	// macros maps arrow symbols to label substitutions.
	macros map[string]string

	// vertexTypes is the authoritative declaration table; typeOrder
	// preserves first-declaration order for deterministic output.
	vertexTypes map[string]string
	typeOrder   []string

	vertexAttributes map[string]map[string]string
	vertexEdges      map[string][]pendingEdge

	// groupCounter tracks the next GroupID per sink vertex;
	// uniqueGroupCounter increments once per set_edges statement.
	groupCounter       map[string]int
	uniqueGroupCounter int
}

func newBuilder() *builder {
	return &builder{
		logger:           slog.Default(),
		macros:           map[string]string{"=": "rec"},
		vertexTypes:      make(map[string]string),
		vertexAttributes: make(map[string]map[string]string),
		vertexEdges:      make(map[string][]pendingEdge),
		groupCounter:     make(map[string]int),
	}
}

func (b *builder) process(stmt agtxt.Statement) error {
	switch s := stmt.(type) {
	case *agtxt.SetTypes:
		b.setTypes(s)
		return nil
	case *agtxt.SetAttributes:
		return b.setAttributes(s)
	case *agtxt.SetEdges:
		return b.setEdges(s)
	case *agtxt.Macro:
		b.macros[s.Symbol] = s.Substitution
		return nil
	default:
		// Tolerate a future grammar superset: skip and continue.
		b.logger.Warn("unrecognized expression in model",
			"line", stmt.Pos().Line)
		return nil
	}
}

func (b *builder) setTypes(s *agtxt.SetTypes) {
	for _, name := range s.Vertices {
		if _, declared := b.vertexTypes[name]; !declared {
			b.typeOrder = append(b.typeOrder, name)
		}
		// Re-declaration overwrites: last write wins.
		b.vertexTypes[name] = s.Type
	}
}

func (b *builder) setAttributes(s *agtxt.SetAttributes) error {
	for _, name := range s.Vertices {
		if err := b.requireDeclared(name, s.Pos()); err != nil {
			return err
		}
		b.assignAttribute(name, s.Key, s.Value)
	}
	return nil
}

func (b *builder) setEdges(s *agtxt.SetEdges) error {
	// All sources are jointly required when more than one is listed.
	conjunction := len(s.Sources) > 1

	// Validate in reading order so the error names the first unresolved
	// vertex the statement mentions.
	for _, source := range s.Sources {
		if err := b.requireDeclared(source, s.Pos()); err != nil {
			return err
		}
	}

	// Sinks: validate, apply the optional description, and make sure the
	// edge list and group counter exist for each.
	for _, sink := range s.Sinks {
		if err := b.requireDeclared(sink, s.Pos()); err != nil {
			return err
		}
		if s.HasDescription {
			b.assignAttribute(sink, "description", s.Description)
		}
		if _, ok := b.vertexEdges[sink]; !ok {
			b.vertexEdges[sink] = nil
		}
		if _, ok := b.groupCounter[sink]; !ok {
			b.groupCounter[sink] = 0
		}
	}

	label := b.resolveLabel(s.Arrow)

	for _, source := range s.Sources {
		for _, sink := range s.Sinks {
			b.vertexEdges[sink] = append(b.vertexEdges[sink], pendingEdge{
				dependency:    source,
				label:         label,
				groupID:       b.groupCounter[sink],
				uniqueGroupID: b.uniqueGroupCounter,
				conjunction:   conjunction,
			})
		}
	}

	// One statement consumed: advance the global counter once and the
	// per-sink counters once each.
	b.uniqueGroupCounter++
	for _, sink := range s.Sinks {
		b.groupCounter[sink]++
	}
	return nil
}

// resolveLabel applies the arrow-label rules: '=' is shorthand for a
// recovery edge, other non-'-' symbols are looked up in the macro table,
// and anything else keeps its explicit label (possibly none).
func (b *builder) resolveLabel(arrow agtxt.Arrow) string {
	if arrow.Type == "=" {
		if arrow.Label == "" {
			return "rec"
		}
		return "rec," + strings.ReplaceAll(arrow.Label, "=", "")
	}
	if arrow.Type != "-" {
		if substitution, ok := b.macros[arrow.Type]; ok {
			return substitution
		}
	}
	return arrow.Label
}

func (b *builder) requireDeclared(name string, pos agtxt.Position) error {
	if _, ok := b.vertexTypes[name]; !ok {
		return &UndeclaredVertexError{Name: name, Line: pos.Line}
	}
	return nil
}

func (b *builder) assignAttribute(name, key, value string) {
	attrs, ok := b.vertexAttributes[name]
	if !ok {
		attrs = make(map[string]string)
		b.vertexAttributes[name] = attrs
	}
	attrs[key] = value
}

// finish materializes the graph: every declared name becomes a Vertex,
// then pending edges are hydrated from names to vertex references.
func (b *builder) finish() *Graph {
	g := New()
	for _, name := range b.typeOrder {
		attrs := b.vertexAttributes[name]
		if attrs == nil {
			attrs = make(map[string]string)
		}
		// AddVertex cannot fail here: typeOrder has no duplicates.
		_ = g.AddVertex(&Vertex{
			Name:       name,
			Type:       b.vertexTypes[name],
			Attributes: attrs,
		})
	}

	for sink, pending := range b.vertexEdges {
		vertex := g.VertexByName(sink)
		for _, pe := range pending {
			vertex.Edges = append(vertex.Edges, &Edge{
				Dependency:    g.VertexByName(pe.dependency),
				Label:         pe.label,
				GroupID:       pe.groupID,
				UniqueGroupID: pe.uniqueGroupID,
				Conjunction:   pe.conjunction,
			})
		}
	}
	return g
}
