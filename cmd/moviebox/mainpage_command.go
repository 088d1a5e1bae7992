package main

import (
	"github.com/spf13/cobra"
)

func newMainPageCommand(ctx *commandContext) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "main-page <category>",
		Short: "Fetch one page of a curated category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.newCatalogClient()
			if err != nil {
				return err
			}
			result, err := client.MainPage(cmd.Context(), args[0], page)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	return cmd
}
