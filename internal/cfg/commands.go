package cfg

import (
	"tubecfg/internal/app"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// bind binds a persistent flag key to Viper.
func bind(key string, cmd *cobra.Command) error {
	return viper.BindPFlag(key, cmd.PersistentFlags().Lookup(key))
}

// newFetchKeyCmd probes the source pages and prints the Innertube key only.
func newFetchKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch-key",
		Short: "Fetch and print a fresh Innertube API key without writing a config",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.FetchKey()
		},
	}
}

// newTidyCmd normalizes an existing config file in place.
func newTidyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tidy",
		Short: "Normalize an existing config file (dedup keys, sort qualities and instances)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Tidy()
		},
	}
}
