package config

import (
	"context"
	"fmt"
)

// Artifact base URLs for computed defaults. Overridable per deployment via
// DCOS_BOOTSTRAP_URL, DCOS_WINDOWS_BOOTSTRAP_URL and DCOS_REPOSITORY_URL.
const (
	DownloadBaseURL       = "https://downloads.dcos.io/dcos"
	WindowsBaseURL        = "https://dcos-win.azureedge.net/dcos-windows"
	DefaultRepositoryURL  = "https://dcosrepo.azureedge.net/dcos"
	testingChannelSegment = "testing/master"
)

// PackageListLookup resolves the latest cluster package-list identifier for
// the testing channel. The production implementation lives in the
// packagelist package; tests inject a stub.
type PackageListLookup func(ctx context.Context) (string, error)

// ApplyDefaults fills unset optional parameters with computed values:
// bootstrap and repository URLs are fixed base-URL concatenations keyed by
// channel, and the package-list id is resolved through lookup when the
// deployment tracks the testing channel.
//
// ApplyDefaults runs after Validate, so the lookup (the only network call
// in the validator stage) never happens for an invalid configuration.
func (c *Config) ApplyDefaults(ctx context.Context, lookup PackageListLookup) error {
	channel := c.Channel()

	if c.DCOS.BootstrapURL == "" {
		c.DCOS.BootstrapURL = bootstrapURL(DownloadBaseURL, channel, c.DCOS.Version)
	}
	if c.DCOS.WindowsBootstrapURL == "" {
		c.DCOS.WindowsBootstrapURL = bootstrapURL(WindowsBaseURL, channel, c.DCOS.Version)
	}
	if c.DCOS.RepositoryURL == "" {
		c.DCOS.RepositoryURL = DefaultRepositoryURL
	}

	if c.DCOS.PackageListID == "" && channel == ChannelTesting {
		if lookup == nil {
			return fmt.Errorf("no package-list lookup available and %s is not set",
				EnvName("dcos.package_list_id"))
		}
		id, err := lookup(ctx)
		if err != nil {
			return fmt.Errorf("failed to resolve latest package list: %w", err)
		}
		c.DCOS.PackageListID = id
	}

	return nil
}

func bootstrapURL(base string, channel Channel, version string) string {
	if channel == ChannelStable {
		return fmt.Sprintf("%s/stable/%s", base, version)
	}
	return fmt.Sprintf("%s/%s", base, testingChannelSegment)
}
