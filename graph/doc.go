// Package graph holds the account-graph data model and the semantic
// builder that turns parsed agtxt statements into a fully cross-referenced
// Graph of vertices and edges.
//
// Building is a single forward pass over the statements: declaration
// tables, macro substitutions and grouping counters are threaded through
// one builder value, and declaration-before-use is enforced as each
// statement is processed. Vertex objects are materialized only after the
// pass, then edges are hydrated from vertex names to direct references.
//
//	stmts, err := agtxt.Parse(src)
//	...
//	g, err := graph.Build(stmts)
//
// A nil *Graph with a nil error is the distinguished result for a
// document that parsed but contained no expressions.
package graph
