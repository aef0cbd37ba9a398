package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mesosphere-incubator/dcos-azure/internal/config"
	"github.com/mesosphere-incubator/dcos-azure/internal/config/wizard"
)

// Wizard collaborators replaced in tests; the interactive form cannot run
// under go test.
var (
	runWizard   = wizard.Run
	writeConfig = wizard.Write
)

// exampleConfig is written by non-interactive init as a starting point.
const exampleConfig = `# dcos-azure deployment configuration.
# Service principal credentials are read from the environment:
#   AZURE_SERVICE_PRINCIPAL_ID, AZURE_SERVICE_PRINCIPAL_SECRET,
#   AZURE_TENANT_ID, AZURE_SUBSCRIPTION_ID
deployment_type: simple
azure:
  region: westus2
  resource_group: my-dcos
masters:
  count: 3
  vm_size: Standard_D2s_v3
  dns_prefix: my-dcos
linux:
  admin: azureuser
  # Leave empty to generate a key pair at deploy time.
  ssh_public_key: ""
  vm_size: Standard_D2s_v3
windows:
  admin: azureuser
  password: ""
  vm_size: Standard_D2s_v3
# Pin a version to deploy from the stable channel; leave unset to track
# the testing channel.
# dcos:
#   version: "1.10.0"
`

// Init writes a starter configuration file, interactively unless told
// otherwise. Existing files are never overwritten.
func Init(ctx context.Context, outPath string, nonInteractive bool) error {
	if outPath == "" {
		outPath = config.DefaultConfigFile
	}

	if _, err := os.Stat(outPath); err == nil {
		return fmt.Errorf("%s already exists, not overwriting", outPath)
	}

	if nonInteractive {
		if err := os.WriteFile(outPath, []byte(exampleConfig), 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		fmt.Printf("Wrote %s - edit it, export your service principal credentials, then run 'dcos-azure deploy'.\n", outPath)
		return nil
	}

	cfg, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard aborted: %w", err)
	}
	if err := writeConfig(cfg, outPath); err != nil {
		return err
	}

	fmt.Printf("Wrote %s.\n", outPath)
	fmt.Printf("Export your service principal credentials, then run 'dcos-azure deploy'.\n")
	return nil
}
