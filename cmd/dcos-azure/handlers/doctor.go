package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mesosphere-incubator/dcos-azure/internal/azure"
	"github.com/mesosphere-incubator/dcos-azure/internal/ui"
	"github.com/mesosphere-incubator/dcos-azure/internal/util/prerequisites"
)

// Collaborators replaced in tests.
var (
	checkTools = func() *prerequisites.CheckResults {
		return prerequisites.Check(prerequisites.DeployTools())
	}
	signedInPrincipal = func(ctx context.Context) string {
		return azure.New(&azure.ExecRunner{}).SignedInPrincipal(ctx)
	}
)

// Doctor reports the state of everything a deploy run needs: prerequisite
// tools on PATH, an active az session, and the credential environment.
// It never mutates anything; exit status is non-zero when a required tool
// is missing.
func Doctor(ctx context.Context) error {
	printer := ui.NewPrinter()

	results := checkTools()
	for _, r := range results.Results {
		if r.Found {
			version := r.Version
			if version == "" {
				version = "unknown version"
			}
			printer.OK("%s: %s (%s)", r.Tool.Name, r.Path, version)
		} else {
			printer.Fail("%s: not found - %s", r.Tool.Name, r.Tool.InstallURL)
		}
	}

	if principal := signedInPrincipal(ctx); principal != "" {
		printer.OK("azure session: signed in as %s", principal)
	} else {
		printer.Info("azure session: not signed in (deploy will log in)")
	}

	for _, env := range []string{
		"AZURE_SERVICE_PRINCIPAL_ID",
		"AZURE_SERVICE_PRINCIPAL_SECRET",
		"AZURE_TENANT_ID",
		"AZURE_SUBSCRIPTION_ID",
	} {
		if os.Getenv(env) != "" {
			printer.OK("%s is set", env)
		} else {
			printer.Fail("%s is not set", env)
		}
	}

	if err := results.Error(); err != nil {
		return fmt.Errorf("doctor found problems: %w", err)
	}
	return nil
}
