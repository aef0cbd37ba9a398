package commands

import (
	"github.com/spf13/cobra"

	"github.com/mesosphere-incubator/dcos-azure/cmd/dcos-azure/handlers"
)

// Doctor returns the doctor command.
//
// The doctor command reports whether the environment is ready for a deploy:
// prerequisite tools, azure session, credential environment variables.
func Doctor() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites for deploying",
		Long: `Doctor checks everything a deploy needs without changing anything:

  - az and dcos-engine on PATH
  - an active azure session
  - the service principal environment variables

Exit status is non-zero when a required tool is missing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context())
		},
	}
}
