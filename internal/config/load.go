package config

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// DefaultConfigFile is the config file name looked up in the current
// directory when no explicit path is given.
const DefaultConfigFile = "dcos-azure.yaml"

// envBindings maps config keys to the environment variables that override
// them. The environment is the primary configuration channel; the YAML file
// is a convenience on top. Validation errors name parameters by these
// environment variable names.
var envBindings = map[string]string{
	"deployment_type": "DCOS_DEPLOYMENT_TYPE",

	"azure.service_principal_id":     "AZURE_SERVICE_PRINCIPAL_ID",
	"azure.service_principal_secret": "AZURE_SERVICE_PRINCIPAL_SECRET",
	"azure.tenant_id":                "AZURE_TENANT_ID",
	"azure.subscription_id":          "AZURE_SUBSCRIPTION_ID",
	"azure.region":                   "AZURE_REGION",
	"azure.resource_group":           "AZURE_RESOURCE_GROUP",

	"masters.count":      "DCOS_MASTER_COUNT",
	"masters.vm_size":    "DCOS_MASTER_VM_SIZE",
	"masters.dns_prefix": "DCOS_MASTER_DNS_PREFIX",

	"linux.admin":          "LINUX_ADMIN",
	"linux.ssh_public_key": "LINUX_SSH_PUBLIC_KEY",
	"linux.vm_size":        "LINUX_AGENT_VM_SIZE",

	"windows.admin":    "WIN_ADMIN",
	"windows.password": "WIN_PASSWORD",
	"windows.vm_size":  "WIN_AGENT_VM_SIZE",

	"agents.linux_private.count":     "LINUX_PRIVATE_AGENT_COUNT",
	"agents.linux_private.vm_size":   "LINUX_PRIVATE_AGENT_VM_SIZE",
	"agents.linux_public.count":      "LINUX_PUBLIC_AGENT_COUNT",
	"agents.linux_public.vm_size":    "LINUX_PUBLIC_AGENT_VM_SIZE",
	"agents.windows_private.count":   "WIN_PRIVATE_AGENT_COUNT",
	"agents.windows_private.vm_size": "WIN_PRIVATE_AGENT_VM_SIZE",
	"agents.windows_public.count":    "WIN_PUBLIC_AGENT_COUNT",
	"agents.windows_public.vm_size":  "WIN_PUBLIC_AGENT_VM_SIZE",

	"dcos.version":               "DCOS_VERSION",
	"dcos.bootstrap_url":         "DCOS_BOOTSTRAP_URL",
	"dcos.windows_bootstrap_url": "DCOS_WINDOWS_BOOTSTRAP_URL",
	"dcos.repository_url":        "DCOS_REPOSITORY_URL",
	"dcos.package_list_id":       "DCOS_CLUSTER_PACKAGE_LIST_ID",

	"options.debug":        "DCOS_DEBUG",
	"options.verbose":      "DCOS_VERBOSE",
	"options.keep_cluster": "AZURE_KEEP_CLUSTER",
}

// EnvName returns the environment variable name backing a config key.
// Used by validation to report missing parameters the way the operator
// set (or failed to set) them.
func EnvName(key string) string {
	return envBindings[key]
}

// Load assembles the configuration from the environment and an optional
// YAML file. Environment variables take precedence over file values.
//
// If path is empty, dcos-azure.yaml in the current directory is used when
// present; its absence is not an error since the environment alone can
// carry a complete configuration. Load does not validate: callers run
// Validate (and then ApplyDefaults) explicitly so that validation is
// guaranteed to happen before any external call.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if _, err := os.Stat(DefaultConfigFile); err == nil {
		v.SetConfigFile(DefaultConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", DefaultConfigFile, err)
		}
	}

	var cfg Config
	// Environment values arrive as strings; decode counts and flags weakly.
	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.DeploymentType == "" {
		cfg.DeploymentType = DeploymentSimple
	}

	return &cfg, nil
}
