package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joss/modelpick/internal/audit"
	"github.com/joss/modelpick/internal/catalog"
	"github.com/joss/modelpick/internal/config"
	"github.com/joss/modelpick/internal/history"
	"github.com/joss/modelpick/internal/render"
)

// runCommand wraps a command body with audit logging and error handling.
func runCommand(category audit.Category, action string, fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		event := auditLogger.Start(category, action)

		if err := fn(cmd, args); err != nil {
			exitOnError(event, err)
			return
		}

		auditLogger.LogSuccess(event)
	}
}

// exitOnError logs the error to the audit log and stderr, then exits.
func exitOnError(event *audit.Event, err error) {
	auditLogger.LogError(event, err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// loadCatalog returns the built-in catalog merged with the user overlay.
func loadCatalog() (*catalog.Catalog, error) {
	return catalog.LoadOverlay(catalog.Builtin(), config.GetPaths().CatalogFile)
}

// openHistory opens the selection history under ~/.modelpick/data.
func openHistory() (*history.Store, error) {
	return history.New(config.GetPaths().Data)
}

// renderer returns a Renderer honoring the --pretty flag.
func renderer() *render.Renderer {
	return render.New(pretty)
}
