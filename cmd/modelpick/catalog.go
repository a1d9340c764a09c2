package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joss/modelpick/internal/audit"
	"github.com/joss/modelpick/internal/catalog"
	"github.com/joss/modelpick/internal/config"
)

// catalogCmd manages the user catalog overlay file.
func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the user catalog file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the catalog file path",
			Args:  cobra.NoArgs,
			Run: runCommand(audit.CategoryCatalog, "catalog-path", func(cmd *cobra.Command, args []string) error {
				fmt.Println(config.GetPaths().CatalogFile)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "init",
			Short: "Create a catalog file template",
			Args:  cobra.NoArgs,
			Run: runCommand(audit.CategoryCatalog, "catalog-init", func(cmd *cobra.Command, args []string) error {
				paths := config.GetPaths()
				if err := config.EnsureDir(paths.Home); err != nil {
					return err
				}
				if err := catalog.WriteDefault(paths.CatalogFile); err != nil {
					return err
				}
				fmt.Printf("Created %s\n", paths.CatalogFile)
				return nil
			}),
		},
	)

	return cmd
}
