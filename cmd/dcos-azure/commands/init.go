package commands

import (
	"github.com/spf13/cobra"

	"github.com/mesosphere-incubator/dcos-azure/cmd/dcos-azure/handlers"
)

// Init returns the init command.
//
// The init command creates a deployment configuration file, interactively
// by default. Service principal credentials stay in the environment and
// are never written to the file.
func Init() *cobra.Command {
	var (
		outPath        string
		nonInteractive bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a deployment configuration file",
		Long: `Init creates a deployment configuration file.

By default an interactive wizard walks through deployment type, Azure
placement, cluster sizing and the DC/OS version channel. With
--non-interactive a commented example file is written instead.

Existing files are never overwritten.

Example:
  dcos-azure init
  dcos-azure init -o cluster.yaml --non-interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outPath, nonInteractive)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path for the configuration file (default dcos-azure.yaml)")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Write a commented example file instead of running the wizard")

	return cmd
}
