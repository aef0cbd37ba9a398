// Package deploy orchestrates the deployment pipeline: prerequisite
// probing, Azure login, template rendering and generation, resource group
// setup, provider-side validation and deployment creation.
//
// Steps run strictly in sequence and every failure is fatal; there is no
// retry and no partial-failure recovery. Cloud state already created when a
// late step fails is left as-is.
package deploy

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mesosphere-incubator/dcos-azure/internal/azure"
	"github.com/mesosphere-incubator/dcos-azure/internal/config"
	"github.com/mesosphere-incubator/dcos-azure/internal/dcosengine"
	"github.com/mesosphere-incubator/dcos-azure/internal/template"
	"github.com/mesosphere-incubator/dcos-azure/internal/ui"
	"github.com/mesosphere-incubator/dcos-azure/internal/util/keygen"
	"github.com/mesosphere-incubator/dcos-azure/internal/util/prerequisites"
)

// adminKeyName is the file name generated admin SSH keys are written under
// in the working directory.
const adminKeyName = "linux_admin"

// cloudClient is the subset of azure.CLI the pipeline drives.
type cloudClient interface {
	SignedInPrincipal(ctx context.Context) string
	Login(ctx context.Context, principalID, secret, tenantID string) error
	SetSubscription(ctx context.Context, subscriptionID string) error
	GroupExists(ctx context.Context, group string) (bool, error)
	CreateGroup(ctx context.Context, group, region string, tags map[string]string) error
	ValidateDeployment(ctx context.Context, group, templatePath, parametersPath string) error
	CreateDeployment(ctx context.Context, group, name, templatePath, parametersPath string) error
}

// templateGenerator is the subset of dcosengine.Generator the pipeline drives.
type templateGenerator interface {
	Generate(ctx context.Context, apiModelPath, outputDir string) (*dcosengine.Artifacts, error)
}

// Options tune a pipeline run.
type Options struct {
	// WorkDir receives the rendered template and generated artifacts. A
	// fresh temporary directory is created when empty.
	WorkDir string
}

// Pipeline runs one deployment end to end. A Pipeline owns its working
// directory: created at the start of the run, removed after the deployment
// call completes. On failure the directory is kept for inspection.
type Pipeline struct {
	cfg     *config.Config
	printer *ui.Printer
	workDir string

	cloud       cloudClient
	generator   templateGenerator
	ensureTools func(ctx context.Context) (*prerequisites.CheckResults, error)
	now         func() time.Time
}

// New assembles a Pipeline against the real az and dcos-engine binaries.
func New(cfg *config.Config, printer *ui.Printer, opts Options) *Pipeline {
	run := &azure.ExecRunner{Verbose: cfg.Options.Verbose}
	return &Pipeline{
		cfg:       cfg,
		printer:   printer,
		workDir:   opts.WorkDir,
		cloud:     azure.New(run),
		generator: dcosengine.New(run),
		ensureTools: func(ctx context.Context) (*prerequisites.CheckResults, error) {
			return prerequisites.EnsureInstalled(ctx, run, prerequisites.DeployTools())
		},
		now: time.Now,
	}
}

// Run executes the pipeline. The configuration is copied up front; the
// caller's value is never mutated.
func (p *Pipeline) Run(ctx context.Context) error {
	cfg := *p.cfg

	p.printer.Step("checking prerequisite tooling")
	results, err := p.ensureTools(ctx)
	if err != nil {
		p.printer.Fail("prerequisites check failed")
		return err
	}
	for _, r := range results.Results {
		if r.Found && r.Version != "" {
			log.Printf("found %s (%s)", r.Tool.Name, r.Version)
		}
	}
	p.printer.OK("prerequisite tooling present")

	workDir, createdTemp, err := p.ensureWorkDir()
	if err != nil {
		return err
	}
	p.printer.Info("working directory: %s", workDir)

	if err := p.login(ctx, &cfg); err != nil {
		return err
	}

	artifacts, err := p.render(ctx, &cfg, workDir)
	if err != nil {
		return err
	}

	if err := p.ensureResourceGroup(ctx, &cfg); err != nil {
		return err
	}

	p.printer.Step("validating deployment")
	if err := p.cloud.ValidateDeployment(ctx, cfg.Azure.ResourceGroup, artifacts.TemplatePath, artifacts.ParametersPath); err != nil {
		p.printer.Fail("deployment validation failed")
		return err
	}
	p.printer.OK("deployment document valid")

	p.printer.Step("creating deployment %s", cfg.Masters.DNSPrefix)
	if err := p.cloud.CreateDeployment(ctx, cfg.Azure.ResourceGroup, cfg.Masters.DNSPrefix, artifacts.TemplatePath, artifacts.ParametersPath); err != nil {
		p.printer.Fail("deployment creation failed")
		return err
	}
	p.printer.OK("deployment created")

	p.cleanup(workDir, createdTemp)
	return nil
}

// ensureWorkDir returns the run's working directory, creating a temporary
// one when none was supplied.
func (p *Pipeline) ensureWorkDir() (string, bool, error) {
	if p.workDir != "" {
		if err := os.MkdirAll(p.workDir, 0750); err != nil {
			return "", false, fmt.Errorf("failed to create working directory: %w", err)
		}
		return p.workDir, false, nil
	}

	dir, err := os.MkdirTemp("", "dcos-azure-*")
	if err != nil {
		return "", false, fmt.Errorf("failed to create working directory: %w", err)
	}
	return dir, true, nil
}

// login authenticates the service principal, skipping the login call when
// an az session for that principal is already active.
func (p *Pipeline) login(ctx context.Context, cfg *config.Config) error {
	p.printer.Step("authenticating to Azure")

	if signedIn := p.cloud.SignedInPrincipal(ctx); signedIn == cfg.Azure.ServicePrincipalID {
		p.printer.OK("already signed in as %s", signedIn)
	} else {
		err := p.cloud.Login(ctx, cfg.Azure.ServicePrincipalID, cfg.Azure.ServicePrincipalSecret, cfg.Azure.TenantID)
		if err != nil {
			p.printer.Fail("login failed")
			return err
		}
		p.printer.OK("signed in as %s", cfg.Azure.ServicePrincipalID)
	}

	return p.cloud.SetSubscription(ctx, cfg.Azure.SubscriptionID)
}

// render writes the api-model into the working directory and runs the
// template generator on it. A missing Linux SSH key is generated here and
// left next to the other artifacts.
func (p *Pipeline) render(ctx context.Context, cfg *config.Config, workDir string) (*dcosengine.Artifacts, error) {
	if cfg.Linux.SSHPublicKey == "" {
		pair, err := keygen.Generate(keygen.DefaultBits)
		if err != nil {
			return nil, fmt.Errorf("failed to generate admin SSH key: %w", err)
		}
		privPath, err := pair.Write(workDir, adminKeyName)
		if err != nil {
			return nil, err
		}
		cfg.Linux.SSHPublicKey = pair.AuthorizedKey()
		p.printer.Info("generated admin SSH key: %s", privPath)
	}

	path := template.Path(cfg.Channel(), cfg.DeploymentType)
	p.printer.Step("rendering template %s", path)
	apiModelPath, err := template.WriteAPIModel(cfg, workDir)
	if err != nil {
		p.printer.Fail("rendering failed")
		return nil, err
	}

	p.printer.Step("generating deployment template")
	artifacts, err := p.generator.Generate(ctx, apiModelPath, filepath.Join(workDir, "generated"))
	if err != nil {
		p.printer.Fail("template generation failed")
		return nil, err
	}
	p.printer.OK("deployment template ready")

	return artifacts, nil
}

// ensureResourceGroup creates the target resource group or reuses an
// existing one. Fresh groups are stamped with a creation-time tag unless
// the cluster is marked keep, so janitor jobs can find stale CI clusters.
func (p *Pipeline) ensureResourceGroup(ctx context.Context, cfg *config.Config) error {
	group := cfg.Azure.ResourceGroup
	p.printer.Step("ensuring resource group %s", group)

	exists, err := p.cloud.GroupExists(ctx, group)
	if err != nil {
		return err
	}
	if exists {
		p.printer.OK("reusing resource group %s", group)
		return nil
	}

	var tags map[string]string
	if !cfg.Options.KeepCluster {
		tags = map[string]string{"now": strconv.FormatInt(p.now().Unix(), 10)}
	}
	if err := p.cloud.CreateGroup(ctx, group, cfg.Azure.Region, tags); err != nil {
		p.printer.Fail("resource group creation failed")
		return err
	}
	p.printer.OK("created resource group %s in %s", group, cfg.Azure.Region)
	return nil
}

// cleanup removes the working directory. Only reached on the happy path;
// failed runs keep their artifacts for inspection.
func (p *Pipeline) cleanup(workDir string, createdTemp bool) {
	if err := os.RemoveAll(workDir); err != nil {
		log.Printf("failed to remove working directory %s: %v", workDir, err)
		return
	}
	if !createdTemp {
		p.printer.Info("removed working directory %s", workDir)
	}
}
