package commands

import (
	"github.com/spf13/cobra"
)

func newTbCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tb <date>",
		Short: "Pull the trial balance as at a date and load it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			frame, err := a.pipeline.RunTrialBalance(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			a.logger.Infof("Trial balance run complete, %d rows", len(frame.Rows))
			return nil
		},
	}
}
