package cmd

/**
 * root.go - root cmd, runs from file if -c given, from defaults otherwise
 */

import (
	"fmt"
	"log"

	"github.com/ifgraph/ifgraph/config"
	"github.com/ifgraph/ifgraph/info"
	"github.com/spf13/cobra"
)

/* Persistent parsed options */
var format string

/* Parsed options */
var configPath string

/* Show version */
var showVersion bool

/* Substitute env vars in config or not */
var isConfigEnvVars bool

/**
 * Add Root Command
 */
func init() {
	RootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Print version information and quit")
	RootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "toml", "Configuration format: \"toml\" or \"json\"")
	RootCmd.PersistentFlags().BoolVarP(&isConfigEnvVars, "use-config-env-vars", "e", false, "Enable ${VAR} interpretation in config")
}

/**
 * Root Command
 */
var RootCmd = &cobra.Command{
	Use:   "ifgraph",
	Short: "Router interface graphs and statistics for dashboards",
	Long: `ifgraph pulls interface graph pages from the router, extracts
max / average / current traffic for daily, weekly, monthly and yearly
windows and serves them as json along with the graph images.`,
	Run: func(cmd *cobra.Command, args []string) {

		if showVersion {
			fmt.Println(info.Version)
			return
		}

		if configPath != "" {
			FromFileCmd.Run(cmd, []string{configPath})
			return
		}

		// no config file: built-in defaults and environment
		cfg, err := prepare(&config.Config{})
		if err != nil {
			log.Fatal(err)
		}

		info.Configuration = struct {
			Kind string `json:"kind"`
		}{"defaults"}

		start(cfg)
	},
}
