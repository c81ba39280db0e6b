package commands

import (
	"github.com/spf13/cobra"
)

func newJournalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "journal",
		Short: "Pull all journals and load the exploded lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			frame, err := a.pipeline.RunJournals(cmd.Context())
			if err != nil {
				return err
			}

			a.logger.Infof("Journal run complete, %d rows", len(frame.Rows))
			return nil
		},
	}
}
