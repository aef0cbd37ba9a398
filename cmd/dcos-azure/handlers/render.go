package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mesosphere-incubator/dcos-azure/internal/template"
	"github.com/mesosphere-incubator/dcos-azure/internal/ui"
	"github.com/mesosphere-incubator/dcos-azure/internal/util/keygen"
)

// Render runs the validator and renderer stages only: the api-model is
// written to the working directory and kept, nothing external is invoked
// beyond the package-list lookup for testing-channel defaults.
func Render(ctx context.Context, configPath, workDir string) error {
	cfg, err := prepareConfig(ctx, configPath)
	if err != nil {
		return err
	}

	if workDir == "" {
		workDir, err = os.MkdirTemp("", "dcos-azure-*")
		if err != nil {
			return fmt.Errorf("failed to create working directory: %w", err)
		}
	} else if err := os.MkdirAll(workDir, 0750); err != nil {
		return fmt.Errorf("failed to create working directory: %w", err)
	}

	printer := ui.NewPrinter()

	if cfg.Linux.SSHPublicKey == "" {
		pair, err := keygen.Generate(keygen.DefaultBits)
		if err != nil {
			return fmt.Errorf("failed to generate admin SSH key: %w", err)
		}
		privPath, err := pair.Write(workDir, "linux_admin")
		if err != nil {
			return err
		}
		cfg.Linux.SSHPublicKey = pair.AuthorizedKey()
		printer.Info("generated admin SSH key: %s", privPath)
	}

	path := template.Path(cfg.Channel(), cfg.DeploymentType)
	printer.Step("rendering template %s", path)

	apiModelPath, err := template.WriteAPIModel(cfg, workDir)
	if err != nil {
		return err
	}

	printer.OK("rendered api model: %s", apiModelPath)
	return nil
}
