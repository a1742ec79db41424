// Package cfg provides configuration and command-line interface setup for tubecfg.
package cfg

import (
	"strings"

	"tubecfg/internal/app"
	"tubecfg/internal/domain/keys"
	"tubecfg/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "tubecfg",
	Short: "tubecfg generates config.yml for the video proxy server.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetLevel(viper.GetInt(keys.DebugLevel))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Lookup("help").Changed {
			return nil
		}
		return app.Generate(cmd)
	},
}

// InitCommands initializes all commands and their flags.
func InitCommands() error {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := initProgramFlags(rootCmd); err != nil {
		return err
	}

	rootCmd.AddCommand(newFetchKeyCmd())
	rootCmd.AddCommand(newTidyCmd())

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
