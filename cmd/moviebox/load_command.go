package main

import (
	"github.com/spf13/cobra"
)

func newLoadCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "load <subjectOrUrl>",
		Short: "Load enriched details for a subject",
		Long: `Load fetches a subject's catalog details, reconciles the title against
the public film/TV index, and enriches the result with artwork and
community metadata. Episodic subjects include a full episode manifest.

The argument may be a bare subject id or any share URL carrying a
subjectId parameter.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assembler, err := ctx.newAssembler()
			if err != nil {
				return err
			}
			details, err := assembler.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, details)
		},
	}
}
