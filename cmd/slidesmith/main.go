package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version is overridden by the release build.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "slidesmith",
	Short: "Convert templated plain-text decks into self-contained HTML",
	Long: `slidesmith converts a plain-text presentation format - a template
configuration block followed by markdown slide bodies - into a single
self-contained HTML document with all media and assets inlined.`,
	Version: Version,
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// An interrupt cancels the command context so the preview server can
	// shut down cleanly.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
