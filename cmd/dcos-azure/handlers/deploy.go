package handlers

import (
	"context"
	"log"

	"github.com/mesosphere-incubator/dcos-azure/internal/config"
	"github.com/mesosphere-incubator/dcos-azure/internal/deploy"
	"github.com/mesosphere-incubator/dcos-azure/internal/ui"
)

// pipelineRunner matches deploy.Pipeline for testing.
type pipelineRunner interface {
	Run(ctx context.Context) error
}

// newPipeline creates the deployment pipeline - replaced in tests.
var newPipeline = func(cfg *config.Config, printer *ui.Printer, opts deploy.Options) pipelineRunner {
	return deploy.New(cfg, printer, opts)
}

// Deploy provisions a DC/OS cluster on Azure.
//
// The full run: load and validate configuration, fill computed defaults,
// then hand over to the pipeline which probes tooling, authenticates,
// renders and generates the deployment template, ensures the resource
// group, validates the deployment and submits it.
func Deploy(ctx context.Context, configPath, workDir string) error {
	cfg, err := prepareConfig(ctx, configPath)
	if err != nil {
		return err
	}

	log.Printf("deploying DC/OS cluster %s (%s deployment, %s channel)",
		cfg.Masters.DNSPrefix, cfg.DeploymentType, cfg.Channel())

	pipeline := newPipeline(cfg, ui.NewPrinter(), deploy.Options{WorkDir: workDir})
	return pipeline.Run(ctx)
}
