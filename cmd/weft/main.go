// Package main provides the entry point for the weft CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version       = "0.1.0-dev"
	globalSite    string
	globalVerbose bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "weft",
		Short:   "Cross-link narrative documents with entity records into linked-data graphs",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&globalSite, "site", "s", ".", "Site directory (holds weft.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "Log advisories at debug level too")

	rootCmd.AddCommand(
		newInitCmd(),
		newBuildCmd(),
		newRecordsCmd(),
		newTypesCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
