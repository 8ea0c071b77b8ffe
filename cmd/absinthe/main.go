// Command absinthe inspects GraphQL schema definition documents:
// validating them, listing their reachable types, and rendering them
// as SDL.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "absinthe",
	Short:         "Inspect and validate GraphQL schema definitions",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
	rootCmd.AddCommand(validateCmd, typesCmd, fmtCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
