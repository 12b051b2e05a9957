// Package readers holds the built-in input format plugins.
package readers

import (
	"log/slog"

	"github.com/SamJakob/agtool2/agtxt"
	"github.com/SamJakob/agtool2/graph"
)

// Txt reads the agtool txt format: a simple, human-readable language for
// describing account graphs. It satisfies the plugin Reader contract.
type Txt struct {
	logger *slog.Logger
}

// NewTxt creates the txt reader. A nil logger falls back to slog.Default().
func NewTxt(logger *slog.Logger) *Txt {
	if logger == nil {
		logger = slog.Default()
	}
	return &Txt{logger: logger}
}

func (*Txt) ID() string      { return "txtreader" }
func (*Txt) Name() string    { return "agtool Format Reader (txt)" }
func (*Txt) Version() string { return "1.0.0" }

func (*Txt) DefaultFileExtension() string { return "txt" }

// ReadGraph parses the document and builds the account graph. An input
// with no expressions yields (nil, nil).
func (r *Txt) ReadGraph(sourceName, input string) (*graph.Graph, error) {
	r.logger.Info("parsing as agtool txt format", "source", sourceName)

	stmts, err := agtxt.Parse([]byte(input))
	if err != nil {
		return nil, err
	}
	if len(stmts) == 0 {
		r.logger.Warn("input is empty, producing no graph", "source", sourceName)
		return nil, nil
	}

	return graph.Build(stmts, graph.WithLogger(r.logger))
}
