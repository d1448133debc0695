package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the configured record types",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				if len(d.Config.Types) == 0 {
					fmt.Println("No types configured.")
					return nil
				}
				tags := make([]string, 0, len(d.Config.Types))
				for tag := range d.Config.Types {
					tags = append(tags, tag)
				}
				sort.Strings(tags)
				for _, tag := range tags {
					tc := d.Config.Types[tag]
					fmt.Printf("  %-12s -> %-14s collection=%-10s template=%s\n",
						tag, tc.GraphType, tc.Collection, tc.Template)
				}
				return nil
			})
		},
	}
}
