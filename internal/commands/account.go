package commands

import (
	"github.com/spf13/cobra"
)

func newAccountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Pull the chart of accounts and load it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			frame, err := a.pipeline.RunAccounts(cmd.Context())
			if err != nil {
				return err
			}

			a.logger.Infof("Account run complete, %d rows", len(frame.Rows))
			return nil
		},
	}
}
