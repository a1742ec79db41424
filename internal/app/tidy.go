package app

import (
	"tubecfg/internal/domain/keys"
	"tubecfg/internal/file"
	"tubecfg/internal/logging"

	"github.com/spf13/viper"
)

// Tidy loads an existing config file, normalizes it the way the proxy server
// does on load, and rewrites it in place.
func Tidy() error {
	path := viper.GetString(keys.OutputPath)

	cfg, err := file.ReadConfigFile(path)
	if err != nil {
		return err
	}

	cfg.Tidy()

	if err := file.WriteConfigFile(path, cfg); err != nil {
		return err
	}

	logging.S("Tidied %s: %d active key(s), %d instance(s)",
		path, len(cfg.API.Keys.Active), len(cfg.Instances))
	return nil
}
