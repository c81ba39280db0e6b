package commands

import (
	"github.com/spf13/cobra"
)

func newManualJournalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "manualjournal",
		Short: "Pull all manual journals and load them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			frame, err := a.pipeline.RunManualJournals(cmd.Context())
			if err != nil {
				return err
			}

			a.logger.Infof("Manual journal run complete, %d rows", len(frame.Rows))
			return nil
		},
	}
}
