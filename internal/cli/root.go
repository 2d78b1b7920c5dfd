// Package cli implements the command-line interface for cubestack.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubestack",
	Short: "Six-cube stacking puzzle solver",
	Long: `cubestack solves the six-cube stacking puzzle: rotate each cube in a
stack of six so that the front column and the left column each show
every face label exactly once.

Solve the built-in set or your own YAML set files, browse alternative
arrangements interactively, and keep a history of past runs.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubestack/cubestack.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// getDBPath returns the database path from flag or default.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return "" // Will use default
}
