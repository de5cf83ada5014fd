package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slidesmith/slidesmith/internal/adapters/secondary/assets"
	"github.com/slidesmith/slidesmith/internal/adapters/secondary/config"
	"github.com/slidesmith/slidesmith/internal/adapters/secondary/markdown"
	"github.com/slidesmith/slidesmith/internal/adapters/secondary/parser"
	"github.com/slidesmith/slidesmith/internal/adapters/secondary/renderer"
	"github.com/slidesmith/slidesmith/internal/domain/services"
)

var buildCmd = &cobra.Command{
	Use:   "build <source>",
	Short: "Compile a presentation into a self-contained HTML document",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "Output file (default: source with .html extension)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]

	cfg, err := config.NewTOMLLoader().Load(filepath.Dir(sourcePath))
	if err != nil {
		return err
	}

	compiler, err := newCompiler(cfg)
	if err != nil {
		return err
	}

	document, err := compiler.CompileFile(cmd.Context(), sourcePath)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = cfg.Output.Path
	}
	if outputPath == "" {
		outputPath = defaultOutputPath(sourcePath)
	}

	if err := os.WriteFile(outputPath, document, 0o644); err != nil { // #nosec G306 - output document is meant to be shared
		return fmt.Errorf("writing output document: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outputPath)
	return nil
}

// newCompiler wires the conversion pipeline from tool configuration.
func newCompiler(cfg *config.Config) (*services.CompilerService, error) {
	engine, err := renderer.NewEngine(
		markdown.NewGoldmarkRenderer(),
		assets.NewBase64Embedder(),
		assets.NewCachingProvider(cfg.Cache.Dir),
		highlightAssets(cfg),
	)
	if err != nil {
		return nil, err
	}

	return services.NewCompilerService(parser.NewDocumentParserAdapter(), engine), nil
}

// highlightAssets maps configured highlighter URLs to render assets.
func highlightAssets(cfg *config.Config) []renderer.Asset {
	if !cfg.Highlight.Enabled {
		return nil
	}

	list := make([]renderer.Asset, 0, len(cfg.Highlight.Styles)+len(cfg.Highlight.Scripts))
	for _, url := range cfg.Highlight.Styles {
		list = append(list, renderer.Asset{URL: url, CacheKey: path.Base(url), Kind: renderer.AssetStyle})
	}
	for _, url := range cfg.Highlight.Scripts {
		list = append(list, renderer.Asset{URL: url, CacheKey: path.Base(url), Kind: renderer.AssetScript})
	}
	return list
}

// defaultOutputPath swaps the source extension for .html.
func defaultOutputPath(sourcePath string) string {
	ext := filepath.Ext(sourcePath)
	return strings.TrimSuffix(sourcePath, ext) + ".html"
}
