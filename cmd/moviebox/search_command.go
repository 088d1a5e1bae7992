package main

import (
	"github.com/spf13/cobra"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog by keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.newCatalogClient()
			if err != nil {
				return err
			}
			items, err := client.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, items)
		},
	}
}
