package template

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesosphere-incubator/dcos-azure/internal/config"
)

func testConfig(dt config.DeploymentType, version string) *config.Config {
	cfg := &config.Config{
		DeploymentType: dt,
		Azure: config.AzureConfig{
			ServicePrincipalID:     "spid",
			ServicePrincipalSecret: "spsecret",
			TenantID:               "tenant",
			SubscriptionID:         "sub",
			Region:                 "westus2",
			ResourceGroup:          "dcos-ci",
		},
		Masters: config.MasterConfig{Count: 3, VMSize: "Standard_D2s_v3", DNSPrefix: "dcos-ci"},
		Linux: config.LinuxConfig{
			Admin:        "azureuser",
			SSHPublicKey: "ssh-rsa AAAAB3Nza... ci@dcos",
			VMSize:       "Standard_D2s_v3",
		},
		Windows: config.WindowsConfig{Admin: "azureuser", Password: "Replace-Me-123!", VMSize: "Standard_D2s_v3"},
		DCOS: config.DCOSConfig{
			Version:             version,
			BootstrapURL:        "https://downloads.dcos.io/dcos/testing/master",
			WindowsBootstrapURL: "https://dcos-win.azureedge.net/dcos-windows/testing/master",
			RepositoryURL:       "https://dcosrepo.azureedge.net/dcos",
			PackageListID:       "pkg-123",
		},
	}
	if dt == config.DeploymentHybrid {
		cfg.Agents = config.AgentPools{
			LinuxPrivate:   config.Pool{Count: 2, VMSize: "Standard_D2s_v3"},
			LinuxPublic:    config.Pool{Count: 1, VMSize: "Standard_D2s_v3"},
			WindowsPrivate: config.Pool{Count: 2, VMSize: "Standard_D2s_v3"},
			WindowsPublic:  config.Pool{Count: 1, VMSize: "Standard_D2s_v3"},
		}
	}
	return cfg
}

func TestPath_ChannelSelection(t *testing.T) {
	assert.Equal(t, "testing/simple.json", Path(config.ChannelTesting, config.DeploymentSimple))
	assert.Equal(t, "stable/simple.json", Path(config.ChannelStable, config.DeploymentSimple))
	assert.Equal(t, "testing/hybrid.json", Path(config.ChannelTesting, config.DeploymentHybrid))
	assert.Equal(t, "stable/hybrid.json", Path(config.ChannelStable, config.DeploymentHybrid))
}

func TestPath_FollowsVersionPin(t *testing.T) {
	// No version pin tracks the testing channel.
	cfg := testConfig(config.DeploymentSimple, "")
	assert.Equal(t, "testing/simple.json", Path(cfg.Channel(), cfg.DeploymentType))

	// A pinned version selects the stable variant.
	cfg = testConfig(config.DeploymentSimple, "1.10.0")
	assert.Equal(t, "stable/simple.json", Path(cfg.Channel(), cfg.DeploymentType))
}

func TestRender_AllVariants(t *testing.T) {
	tests := []struct {
		name    string
		dt      config.DeploymentType
		version string
	}{
		{"testing simple", config.DeploymentSimple, ""},
		{"stable simple", config.DeploymentSimple, "1.10.0"},
		{"testing hybrid", config.DeploymentHybrid, ""},
		{"stable hybrid", config.DeploymentHybrid, "1.9.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered, err := Render(testConfig(tt.dt, tt.version))
			require.NoError(t, err)
			assert.True(t, json.Valid(rendered), "rendered api model must be valid JSON")
		})
	}
}

func TestRender_SubstitutesConfiguration(t *testing.T) {
	cfg := testConfig(config.DeploymentHybrid, "")
	rendered, err := Render(cfg)
	require.NoError(t, err)

	var doc struct {
		Properties struct {
			OrchestratorProfile struct {
				DCOSConfig struct {
					BootstrapURL  string `json:"dcosBootstrapURL"`
					PackageListID string `json:"dcosClusterPackageListID"`
				} `json:"dcosConfig"`
			} `json:"orchestratorProfile"`
			MasterProfile struct {
				Count     int    `json:"count"`
				DNSPrefix string `json:"dnsPrefix"`
			} `json:"masterProfile"`
			AgentPoolProfiles []struct {
				Name  string `json:"name"`
				Count int    `json:"count"`
			} `json:"agentPoolProfiles"`
			ServicePrincipalProfile struct {
				ClientID string `json:"clientId"`
			} `json:"servicePrincipalProfile"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(rendered, &doc))

	assert.Equal(t, cfg.DCOS.BootstrapURL, doc.Properties.OrchestratorProfile.DCOSConfig.BootstrapURL)
	assert.Equal(t, "pkg-123", doc.Properties.OrchestratorProfile.DCOSConfig.PackageListID)
	assert.Equal(t, 3, doc.Properties.MasterProfile.Count)
	assert.Equal(t, "dcos-ci", doc.Properties.MasterProfile.DNSPrefix)
	assert.Equal(t, "spid", doc.Properties.ServicePrincipalProfile.ClientID)
	require.Len(t, doc.Properties.AgentPoolProfiles, 4)
	assert.Equal(t, "linpri", doc.Properties.AgentPoolProfiles[0].Name)
	assert.Equal(t, 2, doc.Properties.AgentPoolProfiles[0].Count)
}

func TestRender_StableOmitsPackageList(t *testing.T) {
	rendered, err := Render(testConfig(config.DeploymentSimple, "1.10.0"))
	require.NoError(t, err)
	assert.NotContains(t, string(rendered), "dcosClusterPackageListID")
	assert.Contains(t, string(rendered), `"orchestratorRelease": "1.10.0"`)
}

func TestRender_Idempotent(t *testing.T) {
	cfg := testConfig(config.DeploymentHybrid, "")

	first, err := Render(cfg)
	require.NoError(t, err)
	second, err := Render(cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical configuration must render byte-identically")
}

func TestWriteAPIModel(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(config.DeploymentSimple, "")

	path, err := WriteAPIModel(cfg, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, APIModelFile), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
