// Package catalog defines the LLM provider and model catalog.
// Availability is gated on the provider's API key environment variable.
package catalog

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// Model is a single selectable model within a provider.
type Model struct {
	Name string `yaml:"name" json:"name"`
}

// Provider groups the models of one LLM vendor.
// Key is the short identifier used to resolve the API key environment
// variable and to build the "key:model" params string.
type Provider struct {
	Name   string  `yaml:"name" json:"name"`
	Key    string  `yaml:"key" json:"key"`
	Models []Model `yaml:"models" json:"models"`
}

// ModelNames returns the model names in catalog order.
func (p Provider) ModelNames() []string {
	names := make([]string, 0, len(p.Models))
	for _, m := range p.Models {
		names = append(names, m.Name)
	}
	return names
}

// HasModel reports whether name is in the provider's model list.
func (p Provider) HasModel(name string) bool {
	for _, m := range p.Models {
		if m.Name == name {
			return true
		}
	}
	return false
}

// FirstModel returns the provider's first model.
func (p Provider) FirstModel() (Model, bool) {
	if len(p.Models) == 0 {
		return Model{}, false
	}
	return p.Models[0], true
}

// LookupFunc resolves an environment variable, os.LookupEnv shaped.
// Injected so key gating stays testable without mutating the process env.
type LookupFunc func(key string) (string, bool)

// Catalog holds the ordered provider list and the key→env-var mapping.
type Catalog struct {
	providers []Provider
	envVars   map[string]string
}

// New builds a catalog from an ordered provider list and env var mapping.
func New(providers []Provider, envVars map[string]string) *Catalog {
	vars := make(map[string]string, len(envVars))
	for k, v := range envVars {
		vars[k] = v
	}
	return &Catalog{providers: providers, envVars: vars}
}

// Builtin returns the default catalog.
func Builtin() *Catalog {
	return New(
		[]Provider{
			{Name: "OpenAI", Key: "openai", Models: []Model{
				{Name: "gpt-4o"},
				{Name: "gpt-3.5-turbo"},
				{Name: "gpt-5-nano"},
			}},
			{Name: "Deepseek", Key: "deepseek", Models: []Model{
				{Name: "deepseek-chat"},
				{Name: "deepseek-coder"},
			}},
			{Name: "Gemini", Key: "gemini", Models: []Model{
				{Name: "gemini-pro"},
				{Name: "gemini-flash"},
			}},
			{Name: "Anthropic", Key: "anthropic", Models: []Model{
				{Name: "claude-3-sonnet-20240229"},
				{Name: "claude-2.1"},
			}},
		},
		map[string]string{
			"openai":    "OPENAI_API_KEY",
			"deepseek":  "DEEPSEEK_API_KEY",
			"gemini":    "GEMINI_API_KEY",
			"anthropic": "ANTHROPIC_API_KEY",
		},
	)
}

// Providers returns all providers in catalog order.
func (c *Catalog) Providers() []Provider {
	out := make([]Provider, len(c.providers))
	copy(out, c.providers)
	return out
}

// Provider looks up a provider by display name.
func (c *Catalog) Provider(name string) (Provider, bool) {
	for _, p := range c.providers {
		if p.Name == name {
			return p, true
		}
	}
	return Provider{}, false
}

// ProviderByKey looks up a provider by its short key.
func (c *Catalog) ProviderByKey(key string) (Provider, bool) {
	for _, p := range c.providers {
		if p.Key == key {
			return p, true
		}
	}
	return Provider{}, false
}

// KeyEnvVar returns the environment variable holding the API key for the
// given provider key, or "" if the key is unknown.
func (c *Catalog) KeyEnvVar(key string) string {
	return c.envVars[key]
}

// HasKey reports whether the provider's API key env var is set and
// non-empty. Checked at call time, never cached.
func (c *Catalog) HasKey(p Provider, lookup LookupFunc) bool {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	envVar := c.envVars[p.Key]
	if envVar == "" {
		return false
	}
	v, ok := lookup(envVar)
	return ok && v != ""
}

// Available returns, in catalog order, the providers whose API key env var
// is present and non-empty.
func (c *Catalog) Available(lookup LookupFunc) []Provider {
	var out []Provider
	for _, p := range c.providers {
		if c.HasKey(p, lookup) {
			out = append(out, p)
		}
	}
	return out
}

// MatchModels returns providers whose model lists are filtered down to the
// names matching the glob pattern. Providers left with no matching models
// are dropped.
func (c *Catalog) MatchModels(pattern string) ([]Provider, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}
	var out []Provider
	for _, p := range c.providers {
		var models []Model
		for _, m := range p.Models {
			ok, err := doublestar.Match(pattern, m.Name)
			if err != nil {
				return nil, fmt.Errorf("match %q: %w", pattern, err)
			}
			if ok {
				models = append(models, m)
			}
		}
		if len(models) > 0 {
			filtered := p
			filtered.Models = models
			out = append(out, filtered)
		}
	}
	return out, nil
}
