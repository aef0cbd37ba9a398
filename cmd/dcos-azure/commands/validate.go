package commands

import (
	"github.com/spf13/cobra"

	"github.com/mesosphere-incubator/dcos-azure/cmd/dcos-azure/handlers"
)

// Validate returns the validate command.
//
// The validate command checks the deployment parameters and reports the
// template the configuration selects. It makes no external calls.
func Validate() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the deployment configuration",
		Long: `Validate checks the deployment parameters without touching Azure.

Errors name the parameter by its environment variable, for example:
  Missing mandatory parameter AZURE_SERVICE_PRINCIPAL_ID

Example:
  dcos-azure validate -c dcos-azure.yaml`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Validate(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to deployment configuration file (default dcos-azure.yaml if present)")

	return cmd
}
