package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joss/modelpick/internal/audit"
	"github.com/joss/modelpick/internal/render"
)

// keysCmd shows API key presence per provider. Values are never printed.
func keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show API key status per provider",
		Args:  cobra.NoArgs,
		Run: runCommand(audit.CategoryKeys, "keys", func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			var rows []render.KeyStatus
			for _, p := range cat.Providers() {
				rows = append(rows, render.KeyStatus{
					Provider: p.Name,
					Key:      p.Key,
					EnvVar:   cat.KeyEnvVar(p.Key),
					Present:  cat.HasKey(p, nil),
				})
			}

			fmt.Print(renderer().Keys(rows))
			return nil
		}),
	}
}
