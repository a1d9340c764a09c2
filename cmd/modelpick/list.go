package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joss/modelpick/internal/audit"
	"github.com/joss/modelpick/internal/catalog"
	"github.com/joss/modelpick/internal/render"
)

// listCmd prints providers and their models.
func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List providers and models",
		Long: `List providers and their models.

By default only providers with a usable API key are shown. --all includes
the rest, --match filters model names with a glob pattern.

Examples:
  modelpick list
  modelpick list --all
  modelpick list --match 'gpt-*'
  modelpick list --json`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			all, _ := cmd.Flags().GetBool("all")
			match, _ := cmd.Flags().GetString("match")
			asJSON, _ := cmd.Flags().GetBool("json")
			runCommand(audit.CategoryList, "list", func(cmd *cobra.Command, args []string) error {
				return runList(all, match, asJSON)
			})(cmd, args)
		},
	}

	cmd.Flags().Bool("all", false, "Include providers without API keys")
	cmd.Flags().String("match", "", "Glob pattern for model names (e.g. 'gpt-*')")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

func runList(all bool, match string, asJSON bool) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	providers := cat.Providers()
	if match != "" {
		providers, err = cat.MatchModels(match)
		if err != nil {
			return err
		}
	}

	if !all {
		var available []catalog.Provider
		for _, p := range providers {
			if cat.HasKey(p, nil) {
				available = append(available, p)
			}
		}
		providers = available
	}

	if len(providers) == 0 {
		if !all && match == "" {
			render.Stdout().Empty("No API keys found for any configured provider. Please check your .env file.")
		} else {
			render.Stdout().Empty("No matching providers")
		}
		return nil
	}

	if asJSON {
		data, err := json.MarshalIndent(providers, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal providers: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Print(renderer().Providers(providers, func(p catalog.Provider) bool {
		return cat.HasKey(p, nil)
	}))
	return nil
}
