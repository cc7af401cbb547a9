// internal/cli/list.go
package gembench

import (
	"github.com/spf13/cobra"
)

// listCmd represents the 'list' command group for enumerating resources.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing resources",
	Long:  `The 'list' command groups subcommands that enumerate resources or information related to gembench.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
