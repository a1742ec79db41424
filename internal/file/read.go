package file

import (
	"fmt"
	"os"

	"tubecfg/internal/models"

	"gopkg.in/yaml.v3"
)

// ReadConfigFile loads and decodes an existing config document.
func ReadConfigFile(path string) (*models.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg models.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return &cfg, nil
}
