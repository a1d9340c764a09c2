// Package selection tracks the current provider/model choice.
// The invariant: the selected model always belongs to the selected
// provider's model list. Provider changes cascade the model back to the
// provider's first entry, mirroring the dependent-dropdown behavior.
package selection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joss/modelpick/internal/catalog"
)

var (
	// ErrNoSelection indicates no provider/model pair is selected.
	ErrNoSelection = errors.New("nothing selected")

	// ErrUnknownProvider indicates the provider is not in the catalog.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrUnknownModel indicates the model is not in the selected
	// provider's list.
	ErrUnknownModel = errors.New("unknown model")

	// ErrNoModels indicates the selected provider has no models.
	ErrNoModels = errors.New("no models configured")
)

// Selector holds the current selection over a catalog snapshot.
type Selector struct {
	cat      *catalog.Catalog
	provider *catalog.Provider
	model    *catalog.Model
}

// New creates an empty selector over the catalog.
func New(cat *catalog.Catalog) *Selector {
	return &Selector{cat: cat}
}

// Catalog returns the backing catalog.
func (s *Selector) Catalog() *catalog.Catalog {
	return s.cat
}

// SelectProvider switches the provider and resets the model to the
// provider's first entry.
func (s *Selector) SelectProvider(name string) error {
	p, ok := s.cat.Provider(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}

	s.provider = &p
	s.model = nil

	first, ok := p.FirstModel()
	if !ok {
		return fmt.Errorf("%w for %s", ErrNoModels, name)
	}
	s.model = &first
	return nil
}

// SelectModel records a model choice within the current provider.
func (s *Selector) SelectModel(name string) error {
	if s.provider == nil {
		return ErrNoSelection
	}
	if !s.provider.HasModel(name) {
		return fmt.Errorf("%w: %s has no model %q", ErrUnknownModel, s.provider.Name, name)
	}
	m := catalog.Model{Name: name}
	s.model = &m
	return nil
}

// SelectDefault selects the first available provider (and its first model).
// Returns ErrNoSelection when no provider has a usable API key.
func (s *Selector) SelectDefault(lookup catalog.LookupFunc) error {
	avail := s.cat.Available(lookup)
	if len(avail) == 0 {
		return fmt.Errorf("%w: no API keys found for any configured provider", ErrNoSelection)
	}
	return s.SelectProvider(avail[0].Name)
}

// Provider returns the selected provider name, or "" if unset.
func (s *Selector) Provider() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name
}

// Model returns the selected model name, or "" if unset.
func (s *Selector) Model() string {
	if s.model == nil {
		return ""
	}
	return s.model.Name
}

// Params returns the "<provider_key>:<model_name>" string for the current
// selection, or ErrNoSelection when either side is unset.
func (s *Selector) Params() (string, error) {
	if s.provider == nil || s.model == nil {
		return "", ErrNoSelection
	}
	return Params(s.provider.Key, s.model.Name), nil
}

// Params formats a provider key and model name as the canonical
// selection string.
func Params(providerKey, model string) string {
	return fmt.Sprintf("%s:%s", providerKey, model)
}

// ParseParams splits a "<provider_key>:<model_name>" string.
func ParseParams(s string) (providerKey, model string, err error) {
	key, model, ok := strings.Cut(s, ":")
	if !ok || key == "" || model == "" {
		return "", "", fmt.Errorf("invalid params %q: want key:model", s)
	}
	return key, model, nil
}

// SelectParams applies a "<provider_key>:<model_name>" string, for
// example from DEFAULT_MODEL.
func (s *Selector) SelectParams(params string) error {
	key, model, err := ParseParams(params)
	if err != nil {
		return err
	}
	p, ok := s.cat.ProviderByKey(key)
	if !ok {
		return fmt.Errorf("%w: key %s", ErrUnknownProvider, key)
	}
	if err := s.SelectProvider(p.Name); err != nil {
		return err
	}
	return s.SelectModel(model)
}
