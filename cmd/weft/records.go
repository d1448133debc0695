package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weft-dev/weft/internal/application/handlers"
)

func newRecordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Inspect and manage entity records",
	}
	cmd.AddCommand(newRecordsListCmd(), newRecordsValidateCmd(), newRecordsImportCmd())
	return cmd
}

func newRecordsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all entity records",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				summaries, err := d.RecordsHandler.List(ctx)
				if err != nil {
					return err
				}
				if len(summaries) == 0 {
					fmt.Println("No records found.")
					return nil
				}
				for _, s := range summaries {
					collection := s.Collection
					if collection == "" {
						collection = "-"
					}
					fmt.Printf("  %-30s %-12s %-12s %d properties\n", s.Name, s.Type, collection, s.Properties)
				}
				fmt.Printf("%d records\n", len(summaries))
				return nil
			})
		},
	}
}

func newRecordsValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Hydrate every record and report the advisories a build would raise",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				advisories, err := d.RecordsHandler.Validate(ctx)
				if err != nil {
					return err
				}
				if len(advisories) == 0 {
					fmt.Println("All records hydrate cleanly.")
					return nil
				}
				for _, adv := range advisories {
					fmt.Printf("  [%s] %s: %s\n", adv.Kind, adv.Subject, adv.Detail)
				}
				fmt.Printf("%d advisories\n", len(advisories))
				return nil
			})
		},
	}
}

func newRecordsImportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import records from a YAML, JSON or CSV file into the record database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withImportHandler(ctx, func(h *handlers.ImportHandler) error {
				result, err := h.Handle(ctx, args[0], handlers.ImportOptions{Format: format})
				if err != nil {
					return err
				}
				fmt.Printf("Imported %d records from %s\n", result.RecordCount, result.FilePath)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "Input format: yaml, json, csv or auto")
	return cmd
}
