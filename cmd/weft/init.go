package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/weft-dev/weft/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new weft site",
		Long:  "Writes a default weft.yaml and creates the records and documents directories.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	if config.Exists(globalSite) {
		return fmt.Errorf("weft already initialized in %s", globalSite)
	}

	if err := config.WriteDefault(globalSite); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	fmt.Printf("Created %s\n", config.ConfigFilePath(globalSite))

	cfg, err := config.Load(globalSite)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	for _, dir := range []string{cfg.RecordsDir(globalSite), cfg.DocumentsDir(globalSite)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Printf("Created %s%c\n", dir, filepath.Separator)
	}

	fmt.Println("Weft initialized successfully!")
	return nil
}
