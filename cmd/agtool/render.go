package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SamJakob/agtool2/plugin"
)

var renderCmd = &cobra.Command{
	Use:   "render <model file>",
	Short: "Render an account graph model",
	Long:  "Parse an account graph model and write it in the output format implied by the output file extension (Graphviz dot by default).",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "Output file (default: input name with the writer's extension)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	input := args[0]
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".dot"
	}

	registry := plugin.Default(logger)
	reader, err := registry.ReaderFor(extensionOf(input, "txt"))
	if err != nil {
		return err
	}
	writer, err := registry.WriterFor(extensionOf(output, "dot"))
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
		fmt.Fprintf(os.Stderr, "%s contains no expressions; nothing to render\n", input)
		return nil
	}

	out, err := writer.WriteGraph(g, filepath.Base(output))
	if err != nil {
		return fmt.Errorf("rendering model: %w", err)
	}

	if err := os.WriteFile(output, out, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logger.Info("rendered model", "vertices", g.Len(), "output", output)
	return nil
}

// extensionOf returns a path's extension without the dot, or fallback
// when the path has none.
func extensionOf(path, fallback string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return fallback
	}
	return ext
}
