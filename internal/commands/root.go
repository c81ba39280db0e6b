package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fern",
		Short: "Xero accounting data extraction and load",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newTbCommand(),
		newPnlCommand(),
		newJournalCommand(),
		newManualJournalCommand(),
		newAccountCommand(),
		newExpenseCommand(),
	)

	return rootCmd
}
