// Package dcosengine wraps the external dcos-engine binary that turns a
// rendered api-model document into a deployable ARM template and its
// parameters file.
package dcosengine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Binary is the name of the template-generation tool looked up in PATH.
const Binary = "dcos-engine"

// Output file names dcos-engine writes into its output directory.
const (
	TemplateFile   = "azuredeploy.json"
	ParametersFile = "azuredeploy.parameters.json"
)

// Runner executes an external command and returns its combined output.
// Structurally identical to azure.Runner so one fake serves both in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Artifacts are the generator outputs the deployment steps consume.
type Artifacts struct {
	TemplatePath   string
	ParametersPath string
}

// Generator invokes dcos-engine as an opaque collaborator.
type Generator struct {
	run Runner
}

// New returns a Generator executing dcos-engine through run.
func New(run Runner) *Generator {
	return &Generator{run: run}
}

// Generate runs dcos-engine against the rendered api-model, producing the
// deployment template and parameters file in outputDir. The generator
// drops a stray translations directory next to the output; it is removed
// best-effort since nothing downstream reads it.
func (g *Generator) Generate(ctx context.Context, apiModelPath, outputDir string) (*Artifacts, error) {
	_, err := g.run.Run(ctx, Binary, "generate",
		"--api-model", apiModelPath,
		"--output-directory", outputDir)
	if err != nil {
		return nil, fmt.Errorf("template generation failed: %w", err)
	}

	_ = os.RemoveAll(filepath.Join(filepath.Dir(outputDir), "translations"))
	_ = os.RemoveAll("translations")

	artifacts := &Artifacts{
		TemplatePath:   filepath.Join(outputDir, TemplateFile),
		ParametersPath: filepath.Join(outputDir, ParametersFile),
	}
	for _, path := range []string{artifacts.TemplatePath, artifacts.ParametersPath} {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("generator did not produce %s: %w", filepath.Base(path), err)
		}
	}

	return artifacts, nil
}
