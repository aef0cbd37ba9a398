package commands

import (
	"github.com/spf13/cobra"

	"github.com/mesosphere-incubator/dcos-azure/cmd/dcos-azure/handlers"
)

// Render returns the render command.
//
// The render command runs validation and template rendering only, leaving
// the api-model on disk for inspection. Nothing is deployed.
func Render() *cobra.Command {
	var (
		configPath string
		workDir    string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the api-model without deploying",
		Long: `Render validates the configuration and writes the rendered api-model
to the working directory. The directory is kept so the output can be
inspected or fed to dcos-engine by hand.

Example:
  dcos-azure render -c dcos-azure.yaml --work-dir ./out`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Render(cmd.Context(), configPath, workDir)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to deployment configuration file (default dcos-azure.yaml if present)")
	cmd.Flags().StringVar(&workDir, "work-dir", "", "Directory to write rendered artifacts to (default a temporary directory)")

	return cmd
}
