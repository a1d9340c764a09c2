package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/joss/modelpick/internal/audit"
	"github.com/joss/modelpick/internal/config"
	"github.com/joss/modelpick/internal/picker"
	"github.com/joss/modelpick/internal/render"
	"github.com/joss/modelpick/internal/selection"
)

// pickCmd runs the interactive cascading picker.
func pickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick a provider and model",
		Long: `Pick a provider and model via two cascading lists.

Stage one shows providers whose API key environment variable is set.
Confirming a provider opens its model list, defaulting to the first model.
The confirmed selection is printed as "<provider_key>:<model_name>".

Examples:
  modelpick pick
  modelpick pick --query claude
  modelpick pick --no-input`,
		Args: cobra.NoArgs,
		Run:  runPickCommand,
	}

	cmd.Flags().String("query", "", "Fuzzy-jump to the best matching model")
	cmd.Flags().Bool("no-input", false, "Print the default selection without UI")
	return cmd
}

// errAborted marks a user-cancelled picker run.
var errAborted = errors.New("aborted")

// runPickCommand is shared by the root command and 'pick'. It handles its
// own audit logging so an abort is recorded as aborted, not success.
func runPickCommand(cmd *cobra.Command, args []string) {
	query, _ := cmd.Flags().GetString("query")
	noInput, _ := cmd.Flags().GetBool("no-input")

	event := auditLogger.Start(audit.CategoryPick, "pick")
	err := runPick(event, query, noInput)
	if errors.Is(err, errAborted) {
		auditLogger.LogAborted(event)
		render.Stderr().Empty("Aborted.")
		return
	}
	if err != nil {
		exitOnError(event, err)
		return
	}
	auditLogger.LogSuccess(event)
}

func runPick(event *audit.Event, query string, noInput bool) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	available := cat.Available(nil)
	if len(available) == 0 {
		render.Stderr().Empty("No API keys found for any configured provider. Please check your .env file.")
		return nil
	}

	sel := selection.New(cat)

	if noInput {
		if dm := config.Env().DefaultModel; dm != "" {
			if err := sel.SelectParams(dm); err != nil {
				render.Stderr().Println("Warning: DEFAULT_MODEL %q ignored: %v", dm, err)
			}
		}
		if sel.Provider() == "" {
			if err := sel.SelectDefault(nil); err != nil {
				return err
			}
		}
	} else {
		result, err := picker.Run(cat, available, query)
		if err != nil {
			return err
		}
		if result.Aborted {
			return errAborted
		}
		if err := sel.SelectProvider(result.Provider.Name); err != nil {
			return err
		}
		if err := sel.SelectModel(result.Model.Name); err != nil {
			return err
		}
	}

	params, err := sel.Params()
	if err != nil {
		return err
	}
	event.Params = params

	recordSelection(sel)

	render.Stderr().Empty(renderer().Selection(sel.Provider(), sel.Model()))
	// Bare params on stdout so the output stays pipeable.
	fmt.Println(params)
	return nil
}

// recordSelection persists the pick, best effort.
func recordSelection(sel *selection.Selector) {
	store, err := openHistory()
	if err != nil {
		render.Stderr().Println("Warning: history unavailable: %v", err)
		return
	}
	defer store.Close()

	p, _ := sel.Catalog().Provider(sel.Provider())
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := store.Record(ctx, p.Name, p.Key, sel.Model()); err != nil {
		render.Stderr().Println("Warning: could not record selection: %v", err)
	}
}
