package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dcos-azure.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
deployment_type: hybrid
azure:
  service_principal_id: "spid"
  service_principal_secret: "spsecret"
  tenant_id: "tenant"
  subscription_id: "sub"
  region: "westus2"
  resource_group: "dcos-ci"
masters:
  count: 3
  vm_size: "Standard_D2s_v3"
  dns_prefix: "dcos-ci-master"
linux:
  admin: "azureuser"
  vm_size: "Standard_D2s_v3"
windows:
  admin: "azureuser"
  password: "Replace-Me-123!"
  vm_size: "Standard_D2s_v3"
agents:
  linux_private:
    count: 2
    vm_size: "Standard_D2s_v3"
dcos:
  version: "1.10.0"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DeploymentHybrid, cfg.DeploymentType)
	assert.Equal(t, "spid", cfg.Azure.ServicePrincipalID)
	assert.Equal(t, "westus2", cfg.Azure.Region)
	assert.Equal(t, 3, cfg.Masters.Count)
	assert.Equal(t, 2, cfg.Agents.LinuxPrivate.Count)
	assert.Equal(t, "1.10.0", cfg.DCOS.Version)
	assert.Equal(t, ChannelStable, cfg.Channel())
}

func TestLoad_EnvironmentOnly(t *testing.T) {
	t.Setenv("DCOS_DEPLOYMENT_TYPE", "simple")
	t.Setenv("AZURE_SERVICE_PRINCIPAL_ID", "env-spid")
	t.Setenv("AZURE_REGION", "eastus")
	t.Setenv("DCOS_MASTER_COUNT", "5")
	t.Setenv("DCOS_DEBUG", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DeploymentSimple, cfg.DeploymentType)
	assert.Equal(t, "env-spid", cfg.Azure.ServicePrincipalID)
	assert.Equal(t, "eastus", cfg.Azure.Region)
	assert.Equal(t, 5, cfg.Masters.Count)
	assert.True(t, cfg.Options.Debug)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
azure:
  region: "westus2"
  resource_group: "from-file"
`)
	t.Setenv("AZURE_RESOURCE_GROUP", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Azure.ResourceGroup)
	assert.Equal(t, "westus2", cfg.Azure.Region)
}

func TestLoad_DefaultsDeploymentTypeToSimple(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DeploymentSimple, cfg.DeploymentType)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "AZURE_SERVICE_PRINCIPAL_ID", EnvName("azure.service_principal_id"))
	assert.Equal(t, "WIN_PUBLIC_AGENT_COUNT", EnvName("agents.windows_public.count"))
	assert.Empty(t, EnvName("no.such.key"))
}
