package plugin

import (
	"log/slog"

	"github.com/SamJakob/agtool2/readers"
	"github.com/SamJakob/agtool2/writers"
)

// Default returns a registry pre-populated with the built-in plugins: the
// txt reader and the Graphviz dot writer.
func Default(logger *slog.Logger) *Registry {
	r := NewRegistry()
	// The built-ins cannot conflict with an empty registry.
	_ = r.RegisterReader(readers.NewTxt(logger))
	_ = r.RegisterWriter(writers.NewDot(nil))
	return r
}
