package config

// DeploymentType selects which template variant and required-parameter
// group applies to a deployment.
type DeploymentType string

const (
	// DeploymentSimple provisions masters plus one Linux and one Windows agent.
	DeploymentSimple DeploymentType = "simple"
	// DeploymentHybrid provisions masters plus private and public agent pools
	// for both Linux and Windows.
	DeploymentHybrid DeploymentType = "hybrid"
)

// Channel is the version channel a deployment draws its artifacts from.
type Channel string

const (
	// ChannelStable is used when a pinned DC/OS version is configured.
	ChannelStable Channel = "stable"
	// ChannelTesting tracks the latest rolling build and is used when no
	// version is configured.
	ChannelTesting Channel = "testing"
)

// Config is the complete deployment configuration.
type Config struct {
	DeploymentType DeploymentType `mapstructure:"deployment_type"`

	Azure   AzureConfig   `mapstructure:"azure"`
	Masters MasterConfig  `mapstructure:"masters"`
	Linux   LinuxConfig   `mapstructure:"linux"`
	Windows WindowsConfig `mapstructure:"windows"`
	Agents  AgentPools    `mapstructure:"agents"`
	DCOS    DCOSConfig    `mapstructure:"dcos"`
	Options Options       `mapstructure:"options"`
}

// AzureConfig holds the service principal credentials and placement of the
// deployment.
type AzureConfig struct {
	ServicePrincipalID     string `mapstructure:"service_principal_id"`
	ServicePrincipalSecret string `mapstructure:"service_principal_secret"`
	TenantID               string `mapstructure:"tenant_id"`
	SubscriptionID         string `mapstructure:"subscription_id"`
	Region                 string `mapstructure:"region"`
	ResourceGroup          string `mapstructure:"resource_group"`
}

// MasterConfig describes the DC/OS master pool.
type MasterConfig struct {
	Count     int    `mapstructure:"count"`
	VMSize    string `mapstructure:"vm_size"`
	DNSPrefix string `mapstructure:"dns_prefix"`
}

// LinuxConfig describes Linux agent access and sizing.
type LinuxConfig struct {
	Admin        string `mapstructure:"admin"`
	SSHPublicKey string `mapstructure:"ssh_public_key"`
	VMSize       string `mapstructure:"vm_size"`
}

// WindowsConfig describes Windows agent access and sizing.
type WindowsConfig struct {
	Admin    string `mapstructure:"admin"`
	Password string `mapstructure:"password"`
	VMSize   string `mapstructure:"vm_size"`
}

// Pool is a hybrid-mode agent pool.
type Pool struct {
	Count  int    `mapstructure:"count"`
	VMSize string `mapstructure:"vm_size"`
}

// AgentPools holds the four hybrid-mode agent pools. Only validated when
// DeploymentType is hybrid.
type AgentPools struct {
	LinuxPrivate   Pool `mapstructure:"linux_private"`
	LinuxPublic    Pool `mapstructure:"linux_public"`
	WindowsPrivate Pool `mapstructure:"windows_private"`
	WindowsPublic  Pool `mapstructure:"windows_public"`
}

// DCOSConfig holds the optional version pin and artifact URL overrides.
// Unset fields are filled by ApplyDefaults.
type DCOSConfig struct {
	Version             string `mapstructure:"version"`
	BootstrapURL        string `mapstructure:"bootstrap_url"`
	WindowsBootstrapURL string `mapstructure:"windows_bootstrap_url"`
	RepositoryURL       string `mapstructure:"repository_url"`
	PackageListID       string `mapstructure:"package_list_id"`
}

// Options holds behavioral flags that do not influence the rendered template.
type Options struct {
	Debug   bool `mapstructure:"debug"`
	Verbose bool `mapstructure:"verbose"`
	// KeepCluster suppresses the cleanup tag on the resource group so
	// periodic janitor jobs leave the cluster alone.
	KeepCluster bool `mapstructure:"keep_cluster"`
}

// Channel returns the version channel implied by the version pin: stable
// when a version is set, testing otherwise.
func (c *Config) Channel() Channel {
	if c.DCOS.Version == "" {
		return ChannelTesting
	}
	return ChannelStable
}
