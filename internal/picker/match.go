package picker

import (
	"github.com/sahilm/fuzzy"

	"github.com/joss/modelpick/internal/catalog"
)

// ResolveQuery fuzzy-matches query against every model of the given
// providers and returns the owning provider and model name of the best
// match. Ranking comes from sahilm/fuzzy scores.
func ResolveQuery(providers []catalog.Provider, query string) (provider string, model string, ok bool) {
	if query == "" {
		return "", "", false
	}

	var names []string
	var owners []string
	for _, p := range providers {
		for _, m := range p.Models {
			names = append(names, m.Name)
			owners = append(owners, p.Name)
		}
	}

	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return "", "", false
	}

	best := matches[0]
	return owners[best.Index], names[best.Index], true
}
