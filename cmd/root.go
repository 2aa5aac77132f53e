package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var _cfgFile string

var rootCmd = &cobra.Command{
	Use:   "smart_home",
	Short: "Smart home demo: factories build the devices, the house status drives the report",

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return doRun(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&_cfgFile, "config", "", "config file (default searches ./, ./config, /etc, /smart_home for smart_home.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: trace, debug, info, warn, error")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
