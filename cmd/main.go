package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/volga-sh/picosafe/cmd/hash"
	"github.com/volga-sh/picosafe/cmd/multisend"
	"github.com/volga-sh/picosafe/cmd/predict"
	"github.com/volga-sh/picosafe/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "picosafe",
	Short: "Utility commands for the Safe protocol engine",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Err(err).Msg("failed to run command")
		os.Exit(1)
	}
}

func main() {
	rootCmd.AddCommand(version.Cmd)
	rootCmd.AddCommand(predict.Cmd)
	rootCmd.AddCommand(hash.Cmd)
	rootCmd.AddCommand(multisend.Cmd)

	Execute()
}
