// Package handlers implements the business logic for CLI commands.
//
// Handler functions are called by the command definitions in the commands
// package. They are framework-agnostic and tested independently of the CLI
// framework; collaborators are factory variables replaced in tests.
package handlers

import (
	"context"

	"github.com/mesosphere-incubator/dcos-azure/internal/config"
	"github.com/mesosphere-incubator/dcos-azure/internal/packagelist"
)

// Factory function variables - replaced in tests for dependency injection.
var (
	// loadConfigFile assembles configuration from env and optional file.
	loadConfigFile = config.Load

	// newPackageListLookup resolves the latest testing-channel package list.
	newPackageListLookup = func() config.PackageListLookup {
		return packagelist.New().Latest
	}
)

// prepareConfig loads, validates and defaults the configuration for a run.
// Validation happens strictly before the package-list lookup, so an invalid
// configuration never triggers a network call.
func prepareConfig(ctx context.Context, configPath string) (*config.Config, error) {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.ApplyDefaults(ctx, newPackageListLookup()); err != nil {
		return nil, err
	}
	return cfg, nil
}
