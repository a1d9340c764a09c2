package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/joss/modelpick/internal/catalog"
	"github.com/joss/modelpick/internal/history"
)

// Renderer handles output formatting.
type Renderer struct {
	pretty bool
}

// New creates a new renderer.
func New(pretty bool) *Renderer {
	return &Renderer{pretty: pretty}
}

// Providers formats the provider/model listing. hasKey marks which
// providers currently have a usable API key.
func (r *Renderer) Providers(providers []catalog.Provider, hasKey func(catalog.Provider) bool) string {
	if len(providers) == 0 {
		return "No providers to show"
	}

	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString("Providers\n"))
		sb.WriteString(strings.Repeat("─", 40) + "\n")
	}

	for _, p := range providers {
		present := hasKey == nil || hasKey(p)

		if r.pretty {
			mark := color.GreenString(BoolIcon(true))
			if !present {
				mark = color.RedString(BoolIcon(false))
			}
			fmt.Fprintf(&sb, "%s %s %s\n", mark, p.Name, color.HiBlackString("(%s)", p.Key))
		} else {
			fmt.Fprintf(&sb, "%s key=%s present=%v\n", p.Name, p.Key, present)
		}

		for _, m := range p.Models {
			if r.pretty {
				fmt.Fprintf(&sb, "    %s\n", m.Name)
			} else {
				fmt.Fprintf(&sb, "  %s\n", m.Name)
			}
		}
	}

	return sb.String()
}

// KeyStatus is one row of the key diagnostic.
type KeyStatus struct {
	Provider string
	Key      string
	EnvVar   string
	Present  bool
}

// Keys formats the API key diagnostic. Key values are never shown.
func (r *Renderer) Keys(rows []KeyStatus) string {
	if len(rows) == 0 {
		return "No providers configured"
	}

	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString("API Keys\n"))
		sb.WriteString(strings.Repeat("─", 40) + "\n")
	}

	for _, row := range rows {
		if r.pretty {
			mark := color.GreenString(BoolIcon(true))
			if !row.Present {
				mark = color.RedString(BoolIcon(false))
			}
			fmt.Fprintf(&sb, "%s %-12s %s\n", mark, row.Provider, color.HiBlackString(row.EnvVar))
		} else {
			fmt.Fprintf(&sb, "%s env=%s present=%v\n", row.Provider, row.EnvVar, row.Present)
		}
	}

	return sb.String()
}

// History formats recent selections, newest first.
func (r *Renderer) History(entries []*history.Entry) string {
	if len(entries) == 0 {
		return "No selections recorded"
	}

	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString("Recent Selections\n"))
		sb.WriteString(strings.Repeat("─", 40) + "\n")
	}

	for _, e := range entries {
		timeStr := e.PickedAt.Local().Format("2006-01-02 15:04")
		if r.pretty {
			fmt.Fprintf(&sb, "%s %s\n", color.HiBlackString(timeStr), e.Params)
		} else {
			fmt.Fprintf(&sb, "[%s] %s\n", timeStr, e.Params)
		}
	}

	return sb.String()
}

// Selection formats the confirmed selection summary for stderr; the bare
// params string goes to stdout separately so it stays pipeable.
func (r *Renderer) Selection(provider, model string) string {
	if r.pretty {
		return fmt.Sprintf("%s %s / %s", color.GreenString("Selected:"), provider, model)
	}
	return fmt.Sprintf("selected provider=%s model=%s", provider, model)
}
