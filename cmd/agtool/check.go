package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SamJakob/agtool2/analysis"
	"github.com/SamJakob/agtool2/plugin"
)

var checkCmd = &cobra.Command{
	Use:   "check <model file>",
	Short: "Parse and validate an account graph model",
	Long:  "Parse a model, build the graph and report structural findings (access loops, self or duplicate dependencies, orphaned vertices).",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	input := args[0]
	registry := plugin.Default(logger)
	reader, err := registry.ReaderFor(extensionOf(input, "txt"))
	if err != nil {
		return err
	}

	src, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading model: %w", err)
	}

	g, err := reader.ReadGraph(filepath.Base(input), string(src))
	if err != nil {
		return fmt.Errorf("parsing model: %w", err)
	}
	if g == nil {
		fmt.Printf("%s: empty model\n", input)
		return nil
	}

	edges := 0
	for _, list := range g.Mappings() {
		edges += len(list)
	}
	fmt.Printf("%s: %d vertices, %d edges\n", input, g.Len(), edges)

	diagnostics := analysis.Validate(g)
	for _, d := range diagnostics {
		fmt.Println(d)
	}

	if analysis.HasErrors(diagnostics) {
		return fmt.Errorf("model has structural errors")
	}
	return nil
}
