package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden at build time via -ldflags.
var Version = "development"

var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the current version of the Safe protocol engine",
	Run: func(*cobra.Command, []string) {
		fmt.Printf("%s\n", Version)
	},
}
