package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Cross-link all documents and compile the linked-data graphs",
		Long:  "Resolves entity markers, auto-links every further label occurrence, extracts mentions and writes the rendered documents plus compacted JSON-LD and N-Quads graphs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				docsDir := d.Config.DocumentsDir(globalSite)
				if outDir == "" {
					outDir = d.Config.OutputDir(globalSite)
				}

				result, err := d.BuildHandler.Handle(ctx, docsDir, outDir)
				if err != nil {
					return fmt.Errorf("building site: %w", err)
				}

				fmt.Printf("Built %d documents and %d entity graphs (%d mentions) into %s\n",
					result.DocumentCount, result.EntityCount, result.MentionCount, result.OutputDir)
				for _, name := range result.SkippedPages {
					fmt.Printf("  skipped page for %q: unconfigured type\n", name)
				}
				if n := d.Collector.Count(); n > 0 {
					fmt.Printf("%d advisories (see log)\n", n)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (defaults to paths.output)")
	return cmd
}
