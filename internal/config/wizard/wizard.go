// Package wizard interactively assembles a starter deployment
// configuration and writes it as a dcos-azure.yaml file.
package wizard

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/mesosphere-incubator/dcos-azure/internal/config"
)

// dnsPrefixRegex validates DNS prefixes: 1-32 lowercase alphanumeric with
// hyphens, starting and ending alphanumeric.
var dnsPrefixRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,30}[a-z0-9])?$`)

// regionOptions are the Azure regions offered by the wizard. Any region can
// still be set through AZURE_REGION or the config file directly.
var regionOptions = []string{
	"westus2",
	"eastus",
	"eastus2",
	"centralus",
	"northeurope",
	"westeurope",
	"southeastasia",
}

// defaultVMSize seeds the sizing prompts.
const defaultVMSize = "Standard_D2s_v3"

// Run walks the operator through the prompts and returns the collected
// configuration. Service principal credentials are deliberately not asked
// for; they stay in the environment.
func Run(ctx context.Context) (*config.Config, error) {
	cfg := &config.Config{
		DeploymentType: config.DeploymentSimple,
		Masters:        config.MasterConfig{Count: 3, VMSize: defaultVMSize},
		Linux:          config.LinuxConfig{Admin: "azureuser", VMSize: defaultVMSize},
		Windows:        config.WindowsConfig{Admin: "azureuser", VMSize: defaultVMSize},
	}

	if err := runDeploymentGroup(ctx, cfg); err != nil {
		return nil, err
	}
	if err := runMasterGroup(ctx, cfg); err != nil {
		return nil, err
	}
	if err := runAgentGroup(ctx, cfg); err != nil {
		return nil, err
	}
	if cfg.DeploymentType == config.DeploymentHybrid {
		if err := runHybridPoolsGroup(ctx, cfg); err != nil {
			return nil, err
		}
	}
	if err := runVersionGroup(ctx, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runDeploymentGroup(ctx context.Context, cfg *config.Config) error {
	deploymentType := string(cfg.DeploymentType)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Deployment Type").
				Description("simple: masters plus one agent per OS; hybrid: full agent pools").
				Options(
					huh.NewOption("simple", string(config.DeploymentSimple)),
					huh.NewOption("hybrid", string(config.DeploymentHybrid)),
				).
				Value(&deploymentType),
			huh.NewSelect[string]().
				Title("Region").
				Description("Azure region for the resource group and cluster").
				Options(huh.NewOptions(regionOptions...)...).
				Value(&cfg.Azure.Region),
			huh.NewInput().
				Title("Resource Group").
				Placeholder("dcos-ci").
				Validate(validateDNSPrefix).
				Value(&cfg.Azure.ResourceGroup),
		).Title("Deployment"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	cfg.DeploymentType = config.DeploymentType(deploymentType)
	return nil
}

func runMasterGroup(ctx context.Context, cfg *config.Config) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Master Count").
				Description("Must be odd for quorum").
				Options(
					huh.NewOption("1", 1),
					huh.NewOption("3", 3),
					huh.NewOption("5", 5),
				).
				Value(&cfg.Masters.Count),
			huh.NewInput().
				Title("Master VM Size").
				Value(&cfg.Masters.VMSize),
			huh.NewInput().
				Title("Master DNS Prefix").
				Placeholder("my-dcos").
				Validate(validateDNSPrefix).
				Value(&cfg.Masters.DNSPrefix),
		).Title("Masters"),
	).RunWithContext(ctx)
}

func runAgentGroup(ctx context.Context, cfg *config.Config) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Linux Admin User").
				Value(&cfg.Linux.Admin),
			huh.NewInput().
				Title("Linux SSH Public Key (optional)").
				Description("Leave empty to generate a key pair at deploy time").
				Value(&cfg.Linux.SSHPublicKey),
			huh.NewInput().
				Title("Linux Agent VM Size").
				Value(&cfg.Linux.VMSize),
			huh.NewInput().
				Title("Windows Admin User").
				Value(&cfg.Windows.Admin),
			huh.NewInput().
				Title("Windows Admin Password").
				EchoMode(huh.EchoModePassword).
				Validate(validateNotEmpty("password")).
				Value(&cfg.Windows.Password),
			huh.NewInput().
				Title("Windows Agent VM Size").
				Value(&cfg.Windows.VMSize),
		).Title("Agents"),
	).RunWithContext(ctx)
}

func runHybridPoolsGroup(ctx context.Context, cfg *config.Config) error {
	cfg.Agents = config.AgentPools{
		LinuxPrivate:   config.Pool{Count: 2, VMSize: cfg.Linux.VMSize},
		LinuxPublic:    config.Pool{Count: 1, VMSize: cfg.Linux.VMSize},
		WindowsPrivate: config.Pool{Count: 2, VMSize: cfg.Windows.VMSize},
		WindowsPublic:  config.Pool{Count: 1, VMSize: cfg.Windows.VMSize},
	}

	countOptions := []huh.Option[int]{
		huh.NewOption("1", 1),
		huh.NewOption("2", 2),
		huh.NewOption("3", 3),
		huh.NewOption("5", 5),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Linux Private Agents").
				Options(countOptions...).
				Value(&cfg.Agents.LinuxPrivate.Count),
			huh.NewSelect[int]().
				Title("Linux Public Agents").
				Options(countOptions...).
				Value(&cfg.Agents.LinuxPublic.Count),
			huh.NewSelect[int]().
				Title("Windows Private Agents").
				Options(countOptions...).
				Value(&cfg.Agents.WindowsPrivate.Count),
			huh.NewSelect[int]().
				Title("Windows Public Agents").
				Options(countOptions...).
				Value(&cfg.Agents.WindowsPublic.Count),
		).Title("Agent Pools"),
	).RunWithContext(ctx)
}

func runVersionGroup(ctx context.Context, cfg *config.Config) error {
	options := []huh.Option[string]{
		huh.NewOption("latest (testing channel)", ""),
	}
	for _, v := range config.SupportedVersions {
		options = append(options, huh.NewOption(v+" (stable)", v))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("DC/OS Version").
				Description("Pinned versions deploy from the stable channel").
				Options(options...).
				Value(&cfg.DCOS.Version),
		).Title("Version"),
	).RunWithContext(ctx)
}

func validateDNSPrefix(s string) error {
	if !dnsPrefixRegex.MatchString(s) {
		return fmt.Errorf("must be 1-32 lowercase alphanumeric characters or hyphens")
	}
	return nil
}

func validateNotEmpty(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
		return nil
	}
}

// Write persists cfg to path as YAML using the same keys Load reads.
// Service principal credentials are not written; the file carries a
// reminder that they come from the environment.
func Write(cfg *config.Config, path string) error {
	doc := map[string]any{
		"deployment_type": string(cfg.DeploymentType),
		"azure": map[string]any{
			"region":         cfg.Azure.Region,
			"resource_group": cfg.Azure.ResourceGroup,
		},
		"masters": map[string]any{
			"count":      cfg.Masters.Count,
			"vm_size":    cfg.Masters.VMSize,
			"dns_prefix": cfg.Masters.DNSPrefix,
		},
		"linux": map[string]any{
			"admin":          cfg.Linux.Admin,
			"ssh_public_key": cfg.Linux.SSHPublicKey,
			"vm_size":        cfg.Linux.VMSize,
		},
		"windows": map[string]any{
			"admin":    cfg.Windows.Admin,
			"password": cfg.Windows.Password,
			"vm_size":  cfg.Windows.VMSize,
		},
	}
	if cfg.DeploymentType == config.DeploymentHybrid {
		doc["agents"] = map[string]any{
			"linux_private":   poolDoc(cfg.Agents.LinuxPrivate),
			"linux_public":    poolDoc(cfg.Agents.LinuxPublic),
			"windows_private": poolDoc(cfg.Agents.WindowsPrivate),
			"windows_public":  poolDoc(cfg.Agents.WindowsPublic),
		}
	}
	if cfg.DCOS.Version != "" {
		doc["dcos"] = map[string]any{"version": cfg.DCOS.Version}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := "# dcos-azure deployment configuration.\n" +
		"# Service principal credentials are read from the environment:\n" +
		"#   AZURE_SERVICE_PRINCIPAL_ID, AZURE_SERVICE_PRINCIPAL_SECRET,\n" +
		"#   AZURE_TENANT_ID, AZURE_SUBSCRIPTION_ID\n"

	if err := os.WriteFile(path, append([]byte(header), data...), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func poolDoc(p config.Pool) map[string]any {
	return map[string]any{"count": p.Count, "vm_size": p.VMSize}
}
