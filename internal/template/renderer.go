package template

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	texttemplate "text/template"

	"github.com/mesosphere-incubator/dcos-azure/internal/config"
)

//go:embed templates
var templatesFS embed.FS

// APIModelFile is the file name the rendered document is written under
// inside the working directory.
const APIModelFile = "apimodel.json"

// Path returns the template path for a channel and deployment type,
// relative to the templates root.
func Path(channel config.Channel, dt config.DeploymentType) string {
	return fmt.Sprintf("%s/%s.json", channel, dt)
}

// Render produces the concrete api-model document for cfg. The template is
// selected by the configuration's channel and deployment type; a
// placeholder referencing an unknown configuration value is an error.
func Render(cfg *config.Config) ([]byte, error) {
	name := Path(cfg.Channel(), cfg.DeploymentType)

	raw, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tmpl, err := texttemplate.New(name).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// WriteAPIModel renders the api-model for cfg into dir and returns the
// written file path. The document carries the service principal secret, so
// it is written owner-readable only.
func WriteAPIModel(cfg *config.Config, dir string) (string, error) {
	rendered, err := Render(cfg)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, APIModelFile)
	if err := os.WriteFile(path, rendered, 0600); err != nil {
		return "", fmt.Errorf("failed to write api model: %w", err)
	}

	return path, nil
}
