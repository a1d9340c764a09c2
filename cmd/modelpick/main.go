// Package main provides the modelpick CLI entrypoint.
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joss/modelpick/internal/audit"
	"github.com/joss/modelpick/internal/config"
	"github.com/joss/modelpick/internal/render"
)

var (
	version     = "0.1.0"
	pretty      = true
	envFile     = ""
	auditLogger *audit.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "modelpick",
		Short: "Pick an LLM provider and model from the terminal",
		Long: `modelpick: cascading provider/model picker for LLM tooling.

Providers are shown only when their API key environment variable is set
(loaded from the process env, ./.env, or ~/.modelpick/.env). The confirmed
selection is printed as "<provider_key>:<model_name>" and recorded in the
selection history.

Usage modes:
  modelpick            Interactive picker (same as 'modelpick pick')
  modelpick list       Show providers and models
  modelpick keys       Show API key status per provider`,
		Version: version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := config.LoadEnvFiles(envFile); err != nil {
				render.Stderr().Println("Warning: %v", err)
			}

			if config.Env().NoColor {
				color.NoColor = true
			}

			auditLogger = openAuditLogger()
		},
		Run: runPickCommand,
	}

	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", true, "Pretty print output")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Extra .env file to load first")
	rootCmd.Flags().String("query", "", "Fuzzy-jump to the best matching model")
	rootCmd.Flags().Bool("no-input", false, "Print the default selection without UI")

	rootCmd.AddCommand(
		pickCmd(),
		listCmd(),
		keysCmd(),
		historyCmd(),
		catalogCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openAuditLogger appends operations to ~/.modelpick/audit.log.
// Falls back to a discard logger so command output stays clean.
func openAuditLogger() *audit.Logger {
	paths := config.GetPaths()
	if err := config.EnsureDir(paths.Home); err == nil {
		if l, err := audit.OpenFileLogger(paths.AuditLog); err == nil {
			return l
		}
	}
	return audit.NewLogger(audit.WithOutput(io.Discard))
}
