package commands

import (
	"github.com/spf13/cobra"
)

func newExpenseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "expense",
		Short: "Rebuild the processed expense journal view and republish it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			frame, err := a.pipeline.RunProcessedJournals(cmd.Context(), a.cfg.ExpenseAccountCodeList(), a.cfg.ExpenseYear)
			if err != nil {
				return err
			}

			a.logger.Infof("Processed journal run complete, %d rows", len(frame.Rows))
			return nil
		},
	}
}
