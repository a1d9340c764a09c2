package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joss/modelpick/internal/audit"
	"github.com/joss/modelpick/internal/render"
	"github.com/joss/modelpick/internal/store"
)

// historyCmd shows past selections.
func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent selections",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			limit, _ := cmd.Flags().GetInt("limit")
			runCommand(audit.CategoryHistory, "history", func(cmd *cobra.Command, args []string) error {
				return runHistory(limit)
			})(cmd, args)
		},
	}

	cmd.Flags().Int("limit", 20, "Maximum entries to show")
	cmd.AddCommand(historyLastCmd())
	return cmd
}

func runHistory(limit int) error {
	hs, err := openHistory()
	if err != nil {
		return err
	}
	defer hs.Close()

	entries, err := hs.List(context.Background(), store.DefaultFilter().WithLimit(limit))
	if err != nil {
		return err
	}

	out := renderer().History(entries)
	if len(entries) == 0 {
		render.Stdout().Empty(out)
		return nil
	}
	fmt.Print(out)
	return nil
}

// historyLastCmd prints the most recent params string, bare, for scripting.
func historyLastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Print the most recent selection string",
		Args:  cobra.NoArgs,
		Run: runCommand(audit.CategoryHistory, "history-last", func(cmd *cobra.Command, args []string) error {
			hs, err := openHistory()
			if err != nil {
				return err
			}
			defer hs.Close()

			last, err := hs.Last(context.Background())
			if store.IsNotFound(err) {
				render.Stderr().Empty("No selections recorded")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Println(last.Params)
			return nil
		}),
	}
}
