package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var validTimeframes = map[string]bool{
	"MONTH":   true,
	"QUARTER": true,
	"YEAR":    true,
}

func newPnlCommand() *cobra.Command {
	var periods int
	var timeframe string

	cmd := &cobra.Command{
		Use:   "pnl <from_date> <to_date>",
		Short: "Pull the profit and loss report for a range and load it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if periods != 0 && (periods < 1 || periods > 11) {
				return fmt.Errorf("periods must be between 1 and 11")
			}
			timeframe = strings.ToUpper(timeframe)
			if timeframe != "" && !validTimeframes[timeframe] {
				return fmt.Errorf("timeframe must be one of MONTH, QUARTER, YEAR")
			}

			a, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			frame, err := a.pipeline.RunProfitAndLoss(cmd.Context(), args[0], args[1], periods, timeframe)
			if err != nil {
				return err
			}

			a.logger.Infof("Profit and loss run complete, %d comparison rows", len(frame.Rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&periods, "periods", 0, "number of comparison periods (1-11)")
	cmd.Flags().StringVar(&timeframe, "timeframe", "", "comparison period size (MONTH, QUARTER, YEAR)")

	return cmd
}
