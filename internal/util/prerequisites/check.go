// Package prerequisites probes for the external tools a deployment needs
// and installs the ones that can be installed non-interactively.
package prerequisites

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Tool represents an external tool a pipeline run depends on.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// InstallURL provides installation instructions for manual installs.
	InstallURL string

	// InstallCommand, when non-empty, installs the tool non-interactively.
	// Tools without one must be installed by hand.
	InstallCommand []string
}

// Runner executes an external command; install commands go through it so
// tests can intercept them.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// DeployTools returns the tools the deployment pipeline invokes.
func DeployTools() []Tool {
	return []Tool{
		{
			Name:           "az",
			Required:       true,
			Description:    "Azure CLI, used for login, resource group and deployment calls",
			InstallURL:     "https://docs.microsoft.com/cli/azure/install-azure-cli",
			InstallCommand: []string{"pip", "install", "--upgrade", "--user", "azure-cli"},
		},
		{
			Name:        "dcos-engine",
			Required:    true,
			Description: "Generates the ARM deployment template from the rendered api model",
			InstallURL:  "https://github.com/Azure/dcos-engine/releases",
		},
	}
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// CheckResult contains the result of probing a single tool.
type CheckResult struct {
	Tool    Tool
	Found   bool
	Path    string
	Version string
}

// CheckResults contains the results of probing multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error naming the missing required tools, or nil.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.InstallURL))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Check probes PATH for the given tools.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		path, err := lookPath(tool.Name)
		if err == nil {
			result.Found = true
			result.Path = path
			result.Version = getToolVersion(tool.Name)
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// EnsureInstalled probes the tools and installs any missing ones that carry
// an install command, then re-probes. Already-present tools are never
// reinstalled, so repeated runs are cheap no-ops.
func EnsureInstalled(ctx context.Context, run Runner, tools []Tool) (*CheckResults, error) {
	results := Check(tools)
	if !results.HasErrors() {
		return results, nil
	}

	for _, tool := range results.Missing {
		if !tool.Required || len(tool.InstallCommand) == 0 {
			continue
		}
		if _, err := run.Run(ctx, tool.InstallCommand[0], tool.InstallCommand[1:]...); err != nil {
			return results, fmt.Errorf("failed to install %s: %w", tool.Name, err)
		}
	}

	results = Check(tools)
	if err := results.Error(); err != nil {
		return results, err
	}
	return results, nil
}

// getToolVersion attempts to get the version of a tool, best effort.
func getToolVersion(name string) string {
	versionFlags := []string{"--version", "version", "-v"}

	for _, flag := range versionFlags {
		// #nosec G204 - name comes from trusted Tool definitions, not user input
		cmd := exec.Command(name, flag)
		output, err := cmd.Output()
		if err == nil {
			lines := strings.Split(string(output), "\n")
			if len(lines) > 0 {
				return strings.TrimSpace(lines[0])
			}
		}
	}

	return ""
}
