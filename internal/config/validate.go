package config

import "fmt"

// requiredParam pairs a configured value with the config key it came from,
// for fail-fast presence checks.
type requiredParam struct {
	value string
	key   string
}

// Validate checks the configuration fail-fast: the first absent required
// parameter aborts with a MissingParameterError naming it. Hybrid-only
// parameters are checked only when DeploymentType is hybrid. The version
// pin, when present, must be in the release allow-list.
//
// Validate performs no I/O; it must run before any external call is made.
func (c *Config) Validate() error {
	switch c.DeploymentType {
	case DeploymentSimple, DeploymentHybrid:
	default:
		return fmt.Errorf("invalid %s %q: must be %q or %q",
			EnvName("deployment_type"), c.DeploymentType, DeploymentSimple, DeploymentHybrid)
	}

	required := []requiredParam{
		{c.Azure.ServicePrincipalID, "azure.service_principal_id"},
		{c.Azure.ServicePrincipalSecret, "azure.service_principal_secret"},
		{c.Azure.TenantID, "azure.tenant_id"},
		{c.Azure.SubscriptionID, "azure.subscription_id"},
		{c.Azure.Region, "azure.region"},
		{c.Azure.ResourceGroup, "azure.resource_group"},
		{c.Masters.VMSize, "masters.vm_size"},
		{c.Masters.DNSPrefix, "masters.dns_prefix"},
		{c.Linux.Admin, "linux.admin"},
		{c.Linux.VMSize, "linux.vm_size"},
		{c.Windows.Admin, "windows.admin"},
		{c.Windows.Password, "windows.password"},
		{c.Windows.VMSize, "windows.vm_size"},
	}
	for _, p := range required {
		if p.value == "" {
			return &MissingParameterError{Name: EnvName(p.key)}
		}
	}

	if c.Masters.Count < 1 {
		return &MissingParameterError{Name: EnvName("masters.count")}
	}
	if c.Masters.Count%2 == 0 {
		return fmt.Errorf("%s must be odd for master quorum, got %d",
			EnvName("masters.count"), c.Masters.Count)
	}

	if c.DeploymentType == DeploymentHybrid {
		if err := c.validateHybridPools(); err != nil {
			return err
		}
	}

	if v := c.DCOS.Version; v != "" && !IsSupportedVersion(v) {
		return &UnsupportedVersionError{Version: v}
	}

	return nil
}

// validateHybridPools checks the hybrid-only parameter group: every one of
// the four agent pools needs a count and a VM size.
func (c *Config) validateHybridPools() error {
	pools := []struct {
		pool Pool
		name string
	}{
		{c.Agents.LinuxPrivate, "agents.linux_private"},
		{c.Agents.LinuxPublic, "agents.linux_public"},
		{c.Agents.WindowsPrivate, "agents.windows_private"},
		{c.Agents.WindowsPublic, "agents.windows_public"},
	}
	for _, p := range pools {
		if p.pool.Count < 1 {
			return &MissingParameterError{Name: EnvName(p.name + ".count")}
		}
		if p.pool.VMSize == "" {
			return &MissingParameterError{Name: EnvName(p.name + ".vm_size")}
		}
	}
	return nil
}
