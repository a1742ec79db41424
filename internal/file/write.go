// Package file reads and writes the config document on disk.
package file

import (
	"fmt"
	"os"

	"tubecfg/internal/logging"
	"tubecfg/internal/models"

	"gopkg.in/yaml.v3"
)

// WriteConfigFile serializes cfg to path as YAML with 2-space indentation.
// Field order follows the struct layout and unicode passes through unescaped.
func WriteConfigFile(path string, cfg *models.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.E("failed to close file %v due to error: %v", path, err)
		}
	}()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML: %w", err)
	}

	return nil
}
