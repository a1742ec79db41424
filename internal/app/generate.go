// Package app implements the tubecfg commands.
package app

import (
	"context"
	"os"
	"strings"

	"tubecfg/internal/domain/consts"
	"tubecfg/internal/domain/keys"
	"tubecfg/internal/extract"
	"tubecfg/internal/file"
	"tubecfg/internal/logging"
	"tubecfg/internal/models"
	"tubecfg/internal/prompt"
	"tubecfg/internal/validation"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Generate runs the generator: collect inputs (flags where given, prompts
// otherwise), probe for a fresh Innertube key, assemble the document and
// write it out. A write failure is the only fatal outcome.
func Generate(cmd *cobra.Command) error {
	logging.P("=== config.yml generator ===\n")

	port, mainURL, activeKeys, err := collectInputs(cmd)
	if err != nil {
		return err
	}

	var innertubeKey *string
	if viper.GetBool(keys.SkipFetch) {
		logging.I("Skipping Innertube key fetch, writing null key")
	} else {
		if k, ok := fetchInnertubeKey(); ok {
			innertubeKey = &k
		} else {
			logging.W("Could not find %s on any page", consts.InnertubeKeyName)
		}
	}

	cfg := models.NewConfig(port, mainURL, activeKeys, innertubeKey)

	outPath := viper.GetString(keys.OutputPath)
	if err := file.WriteConfigFile(outPath, cfg); err != nil {
		return err
	}

	printSummary(outPath, cfg)
	return nil
}

// collectInputs resolves port, main URL and API keys. A flag the operator set
// pre-answers its prompt.
func collectInputs(cmd *cobra.Command) (port int, mainURL string, activeKeys []string, err error) {
	p := prompt.New(os.Stdin, os.Stdout)
	flags := cmd.Flags()

	if flags.Changed(keys.Port) {
		port = viper.GetInt(keys.Port)
		if err = validation.CheckPortRange(port); err != nil {
			return 0, "", nil, err
		}
	} else {
		if port, err = p.Port(); err != nil {
			return 0, "", nil, err
		}
	}

	if flags.Changed(keys.MainURL) {
		mainURL = viper.GetString(keys.MainURL)
	} else {
		if mainURL, err = p.MainURL(); err != nil {
			return 0, "", nil, err
		}
	}

	if flags.Changed(keys.APIKeys) {
		activeKeys = validation.SplitKeys(viper.GetString(keys.APIKeys))
	} else {
		if activeKeys, err = p.APIKeys(); err != nil {
			return 0, "", nil, err
		}
	}

	return port, mainURL, activeKeys, nil
}

// fetchInnertubeKey probes the known source pages for a fresh key.
func fetchInnertubeKey() (string, bool) {
	opts := extract.DefaultRequestOptions()

	if t := viper.GetDuration(keys.FetchTimeout); t > 0 {
		opts.Timeout = t
	}

	if src := viper.GetString(keys.CookieSource); src != "" {
		logging.I("Loading browser cookies (%s) for youtube.com", src)
		cm := extract.NewCookieManager(src)
		cookies, err := cm.GetCookies(context.Background(), consts.KeySources[0])
		if err != nil {
			logging.W("Proceeding without cookies: %v", err)
		} else {
			opts.Cookies = cookies
		}
	}

	return extract.KeyFromSources(consts.InnertubeKeyName, consts.KeySources, opts)
}

// printSummary reports what was written, mirroring the values an operator
// would want to double-check.
func printSummary(path string, cfg *models.Config) {
	logging.S("File successfully created/updated: %s", path)

	usedKey := "<none>"
	if cfg.API.Innertube.Key != nil {
		usedKey = *cfg.API.Innertube.Key
	}
	logging.P("Used INNERTUBE key: %s", usedKey)
	logging.P("Server port:        %d", cfg.Server.Port)
	logging.P("Main URL:           %q", cfg.Server.MainURL)
	logging.P("Active API keys:    %d item(s)", len(cfg.API.Keys.Active))

	if n := len(cfg.API.Keys.Active); n > 0 {
		shown := cfg.API.Keys.Active
		suffix := ""
		if n > 3 {
			shown = shown[:3]
			suffix = "..."
		}
		logging.P("  %s%s", strings.Join(shown, ", "), suffix)
	}
}
