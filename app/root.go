// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gojournal-admin",
	Short: "GoJournal-Admin is a web-based management service for scholarly journals",
	Long: `GoJournal-Admin is a web-based management service for scholarly journals
that provides journal settings administration and an editorial API for
managing submissions and publication metadata.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
