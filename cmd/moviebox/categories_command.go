package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"moviebox/internal/moviebox"
)

func newListCategoriesCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list-categories",
		Short: "List the curated main-page categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "json":
				return writeJSON(cmd, moviebox.CategoryList(moviebox.Categories))
			case "table":
				return renderCategoryTable(cmd)
			case "auto":
				if isTerminal(cmd.OutOrStdout()) {
					return renderCategoryTable(cmd)
				}
				return writeJSON(cmd, moviebox.CategoryList(moviebox.Categories))
			default:
				return fmt.Errorf("unknown format %q (expected auto, json, or table)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "auto", "Output format: auto, json, or table")
	return cmd
}

func renderCategoryTable(cmd *cobra.Command) error {
	rows := make([][]string, 0, len(moviebox.Categories))
	for _, category := range moviebox.Categories {
		rows = append(rows, []string{category.Key, category.Name})
	}
	output := renderTable([]string{"Key", "Name"}, rows, []columnAlignment{alignLeft, alignLeft})
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
