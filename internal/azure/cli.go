package azure

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// CLI wraps the az binary.
type CLI struct {
	run Runner
}

// New returns a CLI that executes az through run.
func New(run Runner) *CLI {
	return &CLI{run: run}
}

// SignedInPrincipal returns the name of the currently signed-in account, or
// the empty string when no session is active. az exits non-zero when no
// account is logged in; that is not an error here.
func (c *CLI) SignedInPrincipal(ctx context.Context) string {
	out, err := c.run.Run(ctx, "az", "account", "show", "--query", "user.name", "--output", "tsv")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// Login authenticates as a service principal.
func (c *CLI) Login(ctx context.Context, principalID, secret, tenantID string) error {
	_, err := c.run.Run(ctx, "az", "login", "--service-principal",
		"--username", principalID,
		"--password", secret,
		"--tenant", tenantID)
	if err != nil {
		return fmt.Errorf("service principal login failed: %w", err)
	}
	return nil
}

// SetSubscription selects the subscription all subsequent commands target.
func (c *CLI) SetSubscription(ctx context.Context, subscriptionID string) error {
	if _, err := c.run.Run(ctx, "az", "account", "set", "--subscription", subscriptionID); err != nil {
		return fmt.Errorf("failed to select subscription: %w", err)
	}
	return nil
}

// GroupExists reports whether the named resource group already exists.
func (c *CLI) GroupExists(ctx context.Context, group string) (bool, error) {
	out, err := c.run.Run(ctx, "az", "group", "exists", "--name", group)
	if err != nil {
		return false, fmt.Errorf("failed to check resource group: %w", err)
	}
	return strings.TrimSpace(string(out)) == "true", nil
}

// CreateGroup creates a resource group in region, applying tags when given.
// Tags are emitted in sorted key order so the command line is stable.
func (c *CLI) CreateGroup(ctx context.Context, group, region string, tags map[string]string) error {
	args := []string{"group", "create", "--name", group, "--location", region}
	if len(tags) > 0 {
		args = append(args, "--tags")
		keys := make([]string, 0, len(tags))
		for k := range tags {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			args = append(args, fmt.Sprintf("%s=%s", k, tags[k]))
		}
	}
	if _, err := c.run.Run(ctx, "az", args...); err != nil {
		return fmt.Errorf("failed to create resource group: %w", err)
	}
	return nil
}

// ValidateDeployment runs the provider-side validation of the deployment
// document without creating anything.
func (c *CLI) ValidateDeployment(ctx context.Context, group, templatePath, parametersPath string) error {
	_, err := c.run.Run(ctx, "az", "deployment", "group", "validate",
		"--resource-group", group,
		"--template-file", templatePath,
		"--parameters", "@"+parametersPath)
	if err != nil {
		return fmt.Errorf("deployment validation failed: %w", err)
	}
	return nil
}

// CreateDeployment submits the deployment for creation and blocks until the
// provider reports completion.
func (c *CLI) CreateDeployment(ctx context.Context, group, name, templatePath, parametersPath string) error {
	_, err := c.run.Run(ctx, "az", "deployment", "group", "create",
		"--resource-group", group,
		"--name", name,
		"--template-file", templatePath,
		"--parameters", "@"+parametersPath)
	if err != nil {
		return fmt.Errorf("deployment creation failed: %w", err)
	}
	return nil
}
