// Command uastquery runs XPath 1.0 queries and ordered traversals
// against a JSON-shaped demo UAST tree, exercising the uast package
// end to end.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string //nolint:gochecknoglobals
	roleCfg string //nolint:gochecknoglobals
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "uastquery",
		Short: "Evaluate XPath queries and orderings over a UAST",
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./.uastquery.yaml or $HOME)")
	rootCmd.PersistentFlags().StringVar(&roleCfg, "roles", "", "role table JSON file (name -> numeric id)")

	rootCmd.AddCommand(queryCmd())
	rootCmd.AddCommand(walkCmd())

	if err := rootCmd.Execute(); err != nil {
		slog.Error("uastquery failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
