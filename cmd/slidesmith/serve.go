package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	httpadapter "github.com/slidesmith/slidesmith/internal/adapters/primary/http"
	"github.com/slidesmith/slidesmith/internal/adapters/secondary/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve <source>",
	Short: "Preview a presentation with live reload",
	Args:  cobra.ExactArgs(1),
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "Port to serve on (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]

	cfg, err := config.NewTOMLLoader().Load(filepath.Dir(sourcePath))
	if err != nil {
		return err
	}

	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}

	compiler, err := newCompiler(cfg)
	if err != nil {
		return err
	}

	server := httpadapter.NewServer(compiler, sourcePath, cfg.Server.Host, cfg.Server.Port)
	return server.Start(cmd.Context())
}
