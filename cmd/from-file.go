package cmd

/**
 * from-file.go - pull config from file and run
 */

import (
	"log"
	"os"

	"github.com/ifgraph/ifgraph/info"
	"github.com/ifgraph/ifgraph/utils/codec"
	"github.com/spf13/cobra"
)

/**
 * Add command
 */
func init() {
	RootCmd.AddCommand(FromFileCmd)
}

/**
 * FromFile Command
 */
var FromFileCmd = &cobra.Command{
	Use:   "from-file <path>",
	Short: "Start using config from file",
	Run: func(cmd *cobra.Command, args []string) {

		if len(args) != 1 {
			_ = cmd.Help()
			return
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		cfg, err := Load(string(data), codec.FormatOf(args[0], format), isConfigEnvVars)
		if err != nil {
			log.Fatal(err)
		}

		info.Configuration = struct {
			Kind string `json:"kind"`
			Path string `json:"path"`
		}{"file", args[0]}

		start(cfg)
	},
}
