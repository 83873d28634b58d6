package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/linear"
)

var (
	// Global flags
	verbose     bool
	logFormat   string
	debugChecks bool
)

var rootCmd = &cobra.Command{
	Use:   "linearctl",
	Short: "Drive the linear data structures from the command line",
	Long: `linearctl runs a script of operations against one of the linear
data structures (static list, linked list, circular list, sequential list,
stack or queue) and prints the results.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch logFormat {
		case "text", "json":
			return nil
		default:
			return fmt.Errorf("unknown log format %q (want text or json)", logFormat)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Debug log format: text or json")
	rootCmd.PersistentFlags().
		BoolVar(&debugChecks, "debug-checks", false, "Validate the slot chains after every mutation")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), "%v\n", err)
		os.Exit(1)
	}
}

// listOptions builds the static list options from the global flags.
func listOptions() []linear.Option {
	logger := linear.NoopLogger()
	if verbose {
		if logFormat == "json" {
			logger = linear.NewJSONLogger(slog.LevelDebug)
		} else {
			logger = linear.NewTextLogger(slog.LevelDebug)
		}
	}
	return []linear.Option{
		linear.WithLogger(logger),
		linear.WithDebugChecks(debugChecks),
	}
}

// printError prints an error message
func printError(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "Error: "+format, args...)
}

// printJSON outputs data as JSON
func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
