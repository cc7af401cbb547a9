// internal/cli/list_models.go
package gembench

import "github.com/spf13/cobra"

// modelsCmd implements 'list models', which queries the provider for the
// model variants available to the configured credential.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the model variants available to your API key",
	Long:  `The 'models' subcommand asks the provider which model variants the configured API key may call and prints them alphabetically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListModels(cmd.Context())
	},
}

func init() {
	listCmd.AddCommand(modelsCmd)
}
