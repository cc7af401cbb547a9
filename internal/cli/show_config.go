// internal/cli/show_config.go
package gembench

import "github.com/spf13/cobra"

// showConfigCmd implements 'show config', which prints the fully merged
// configuration so flag/file precedence can be verified at a glance.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON config is loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		runShowConfig()
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
