package cmd

import (
	"fmt"
	"os"

	"github.com/sparrowkv/sparrow/cmd/kv"
	"github.com/sparrowkv/sparrow/cmd/serve"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "sparrow",
		Short: "in-memory key-value store",
		Long: fmt.Sprintf(`sparrow (v%s)

An in-memory key-value store speaking a RESP-compatible wire protocol,
with a single-writer engine that executes all commands sequentially.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of sparrow",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sparrow v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(serve.ServeCmd)
	RootCmd.AddCommand(kv.KeyValueCommands)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
