package cmd

/**
 * from-url.go - pull config from url and run
 */

import (
	"io"
	"log"
	"net/http"
	"time"

	"github.com/ifgraph/ifgraph/info"
	"github.com/spf13/cobra"
)

/**
 * Add command
 */
func init() {
	RootCmd.AddCommand(FromUrlCmd)
}

/**
 * FromUrlCmd command
 */
var FromUrlCmd = &cobra.Command{
	Use:   "from-url <url>",
	Short: "Start using config from URL",
	Run: func(cmd *cobra.Command, args []string) {

		if len(args) != 1 {
			_ = cmd.Help()
			return
		}

		client := http.Client{Timeout: 30 * time.Second}
		res, err := client.Get(args[0])
		if err != nil {
			log.Fatal(err)
		}

		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			log.Fatalf("Unexpected status %s from %s", res.Status, args[0])
		}

		content, err := io.ReadAll(res.Body)
		if err != nil {
			log.Fatal(err)
		}

		cfg, err := Load(string(content), format, isConfigEnvVars)
		if err != nil {
			log.Fatal(err)
		}

		info.Configuration = struct {
			Kind string `json:"kind"`
			Url  string `json:"url"`
		}{"url", args[0]}

		start(cfg)
	},
}
