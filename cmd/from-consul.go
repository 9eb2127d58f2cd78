package cmd

/**
 * from-consul.go - pull config from consul and run
 */

import (
	"log"

	consul "github.com/hashicorp/consul/api"
	"github.com/ifgraph/ifgraph/info"
	"github.com/spf13/cobra"
)

/* Parsed options */
var consulHost string
var consulKey string

/**
 * Add command
 */
func init() {

	FromConsulCmd.Flags().StringVarP(&consulHost, "host", "", "localhost:8500", "Consul host")
	FromConsulCmd.Flags().StringVarP(&consulKey, "key", "", "ifgraph", "Consul Key to pull config from")

	RootCmd.AddCommand(FromConsulCmd)
}

/**
 * FromConsul command
 */
var FromConsulCmd = &cobra.Command{
	Use:   "from-consul",
	Short: "Start using config from Consul",
	Long:  `Start using config from the Consul Key-Value storage`,
	Run: func(cmd *cobra.Command, args []string) {

		client, err := consul.NewClient(&consul.Config{
			Address: consulHost,
		})
		if err != nil {
			log.Fatal(err)
		}

		pair, _, err := client.KV().Get(consulKey, nil)
		if err != nil {
			log.Fatal(err)
		}

		if pair == nil {
			log.Fatal("Empty value for key " + consulKey)
		}

		cfg, err := Load(string(pair.Value), format, isConfigEnvVars)
		if err != nil {
			log.Fatal(err)
		}

		info.Configuration = struct {
			Kind string `json:"kind"`
			Host string `json:"host"`
			Key  string `json:"key"`
		}{"consul", consulHost, consulKey}

		start(cfg)
	},
}
