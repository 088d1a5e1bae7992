package main

import (
	"github.com/spf13/cobra"
)

func newLinksCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "links <subjectId[|season|episode]>",
		Short: "Load streaming links and subtitles for an episode reference",
		Long: `Links resolves every language variant of a subject and gathers its
playable streams and subtitle tracks. Episode references use the
"subjectId|season|episode" form produced by the load command; a bare
subject id requests the movie streams.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assembler, err := ctx.newAssembler()
			if err != nil {
				return err
			}
			links, err := assembler.Links(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, links)
		},
	}
}
