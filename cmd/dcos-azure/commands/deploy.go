package commands

import (
	"github.com/spf13/cobra"

	"github.com/mesosphere-incubator/dcos-azure/cmd/dcos-azure/handlers"
)

// Deploy returns the deploy command.
//
// The deploy command runs the full provisioning flow: parameter validation,
// template rendering, dcos-engine generation and the Azure deployment.
func Deploy() *cobra.Command {
	var (
		configPath string
		workDir    string
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy a DC/OS cluster to Azure",
		Long: `Deploy provisions a DC/OS cluster on Azure.

The full run:
  - validate the deployment parameters (fails before anything is invoked)
  - render the api-model template for the selected channel and variant
  - generate ARM templates with dcos-engine
  - log in with the service principal and select the subscription
  - create the resource group if it does not exist
  - validate, then submit the ARM deployment

Configuration comes from the environment, optionally layered over a YAML
file. Run 'dcos-azure init' to create one.

Example:
  dcos-azure deploy -c dcos-azure.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Deploy(cmd.Context(), configPath, workDir)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to deployment configuration file (default dcos-azure.yaml if present)")
	cmd.Flags().StringVar(&workDir, "work-dir", "", "Working directory for rendered artifacts (default a temporary directory)")

	return cmd
}
