package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesosphere-incubator/dcos-azure/internal/config"
	"github.com/mesosphere-incubator/dcos-azure/internal/deploy"
	"github.com/mesosphere-incubator/dcos-azure/internal/ui"
)

type pipelineMock struct {
	runs int
	err  error
}

func (m *pipelineMock) Run(_ context.Context) error {
	m.runs++
	return m.err
}

func TestDeploy(t *testing.T) {
	origLoad := loadConfigFile
	origLookup := newPackageListLookup
	origPipeline := newPipeline
	defer func() {
		loadConfigFile = origLoad
		newPackageListLookup = origLookup
		newPipeline = origPipeline
	}()

	loadConfigFile = func(_ string) (*config.Config, error) {
		return testConfig(), nil
	}
	lookupCalled := false
	newPackageListLookup = stubLookup(&lookupCalled)

	mock := &pipelineMock{}
	var gotOpts deploy.Options
	newPipeline = func(_ *config.Config, _ *ui.Printer, opts deploy.Options) pipelineRunner {
		gotOpts = opts
		return mock
	}

	err := Deploy(context.Background(), "dcos-azure.yaml", "/tmp/work")
	require.NoError(t, err)
	assert.Equal(t, 1, mock.runs)
	assert.Equal(t, "/tmp/work", gotOpts.WorkDir)
}

func TestDeploy_InvalidConfigNeverRunsPipeline(t *testing.T) {
	origLoad := loadConfigFile
	origPipeline := newPipeline
	defer func() {
		loadConfigFile = origLoad
		newPipeline = origPipeline
	}()

	loadConfigFile = func(_ string) (*config.Config, error) {
		cfg := testConfig()
		cfg.Masters.Count = 2
		return cfg, nil
	}

	mock := &pipelineMock{}
	newPipeline = func(_ *config.Config, _ *ui.Printer, _ deploy.Options) pipelineRunner {
		return mock
	}

	err := Deploy(context.Background(), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "odd")
	assert.Zero(t, mock.runs)
}

func TestDeploy_PipelineErrorPropagates(t *testing.T) {
	origLoad := loadConfigFile
	origLookup := newPackageListLookup
	origPipeline := newPipeline
	defer func() {
		loadConfigFile = origLoad
		newPackageListLookup = origLookup
		newPipeline = origPipeline
	}()

	loadConfigFile = func(_ string) (*config.Config, error) {
		return testConfig(), nil
	}
	lookupCalled := false
	newPackageListLookup = stubLookup(&lookupCalled)

	mock := &pipelineMock{err: errors.New("deployment validation failed")}
	newPipeline = func(_ *config.Config, _ *ui.Printer, _ deploy.Options) pipelineRunner {
		return mock
	}

	err := Deploy(context.Background(), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deployment validation failed")
}
