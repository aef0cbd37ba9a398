package handlers

import (
	"fmt"

	"github.com/mesosphere-incubator/dcos-azure/internal/template"
)

// Validate runs the parameter validator only and reports the template the
// configuration would select. No external call of any kind is made.
func Validate(configPath string) error {
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Printf("Configuration valid.\n")
	fmt.Printf("  deployment type: %s\n", cfg.DeploymentType)
	fmt.Printf("  channel:         %s\n", cfg.Channel())
	fmt.Printf("  template:        %s\n", template.Path(cfg.Channel(), cfg.DeploymentType))
	return nil
}
