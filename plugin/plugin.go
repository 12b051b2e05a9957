// Package plugin defines the reader/writer plugin contract and an
// explicit registry keyed by format extension. Readers turn input text
// into an account graph; writers turn a graph into output bytes.
//
// Plugins are registered explicitly at startup (see Default); there is no
// runtime discovery.
package plugin

import "github.com/SamJakob/agtool2/graph"

// Plugin is the metadata surface shared by readers and writers.
type Plugin interface {
	// ID uniquely identifies the plugin within a registry.
	ID() string

	// Name is the human-readable plugin name.
	Name() string

	// Version is the plugin version string.
	Version() string

	// DefaultFileExtension is the extension (without dot) the plugin
	// handles, used as the registry key.
	DefaultFileExtension() string
}

// Reader parses an account-graph document in some input format.
type Reader interface {
	Plugin

	// ReadGraph parses input into a graph. sourceName is a diagnostic
	// label (typically a file name). A nil graph with a nil error is the
	// distinguished result for an input with no expressions.
	ReadGraph(sourceName, input string) (*graph.Graph, error)
}

// Writer serializes an account graph to some output format.
type Writer interface {
	Plugin

	// WriteGraph renders the graph. destinationLabel is a diagnostic
	// label (typically the output file name).
	WriteGraph(g *graph.Graph, destinationLabel string) ([]byte, error)
}
