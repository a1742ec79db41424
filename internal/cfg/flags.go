package cfg

import (
	"tubecfg/internal/domain/consts"
	"tubecfg/internal/domain/keys"

	"github.com/spf13/cobra"
)

// initProgramFlags sets up the persistent program flags and binds them to Viper.
func initProgramFlags(rootCmd *cobra.Command) error {
	flags := rootCmd.PersistentFlags()

	// Output file
	flags.StringP(keys.OutputPath, "o", consts.DefaultOutputFile, "Output config file path")
	if err := bind(keys.OutputPath, rootCmd); err != nil {
		return err
	}

	// Server port (pre-answers the prompt)
	flags.Int(keys.Port, consts.DefaultPort, "Server port (1-65535)")
	if err := bind(keys.Port, rootCmd); err != nil {
		return err
	}

	// Main URL (pre-answers the prompt)
	flags.String(keys.MainURL, "", "Main URL of the proxy")
	if err := bind(keys.MainURL, rootCmd); err != nil {
		return err
	}

	// API keys (pre-answers the prompt)
	flags.String(keys.APIKeys, "", "Comma-separated list of active API keys")
	if err := bind(keys.APIKeys, rootCmd); err != nil {
		return err
	}

	// Skip the network probe entirely
	flags.Bool(keys.SkipFetch, false, "Skip fetching a fresh Innertube key (writes null)")
	if err := bind(keys.SkipFetch, rootCmd); err != nil {
		return err
	}

	// Browser cookies for the probe
	flags.String(keys.CookieSource, "", "Browser to grab youtube.com cookies from (e.g. firefox)")
	if err := bind(keys.CookieSource, rootCmd); err != nil {
		return err
	}

	// Per-request fetch timeout
	flags.Duration(keys.FetchTimeout, consts.FetchTimeout, "Per-request fetch timeout")
	if err := bind(keys.FetchTimeout, rootCmd); err != nil {
		return err
	}

	// Debug verbosity
	flags.Int(keys.DebugLevel, 0, "Debugging level (0-2)")
	return bind(keys.DebugLevel, rootCmd)
}
