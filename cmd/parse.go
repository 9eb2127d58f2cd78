package cmd

/**
 * parse.go - run extraction over a saved graph page
 */

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ifgraph/ifgraph/graph"
	"github.com/spf13/cobra"
)

/* Parsed options */
var parseIface string

/**
 * Add command
 */
func init() {
	ParseCmd.Flags().StringVarP(&parseIface, "iface", "i", "", "Interface name to put in result")
	RootCmd.AddCommand(ParseCmd)
}

/**
 * Parse command
 */
var ParseCmd = &cobra.Command{
	Use:   "parse <file|->",
	Short: "Extract statistics from a saved graph page and print json",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		var in io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		page, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("reading page: %w", err)
		}

		out, err := json.MarshalIndent(graph.Parse(string(page), parseIface), "", "    ")
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
