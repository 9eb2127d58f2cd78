package cmd

/**
 * cmd.go - command line runner
 */

import (
	"fmt"
	"os"

	"github.com/ifgraph/ifgraph/config"
	"github.com/ifgraph/ifgraph/utils"
	"github.com/ifgraph/ifgraph/utils/codec"
)

/**
 * App Start function to call after initialization
 */
var start func(*config.Config)

/**
 * Execute processing flags
 */
func Execute(f func(*config.Config)) {
	start = f
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

/**
 * Load decodes config text, then applies defaults and env overrides
 */
func Load(data string, format string, substituteEnv bool) (*config.Config, error) {

	if substituteEnv {
		data = utils.SubstituteEnvVars(data)
	}

	var cfg config.Config
	if err := codec.Decode(data, &cfg, format); err != nil {
		return nil, fmt.Errorf("decoding %s config: %w", format, err)
	}

	return prepare(&cfg)
}

func prepare(cfg *config.Config) (*config.Config, error) {

	cfg.SetDefaults()
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
