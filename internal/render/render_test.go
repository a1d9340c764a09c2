package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joss/modelpick/internal/catalog"
	"github.com/joss/modelpick/internal/history"
)

func TestProvidersPlain(t *testing.T) {
	r := New(false)
	providers := []catalog.Provider{
		{Name: "OpenAI", Key: "openai", Models: []catalog.Model{{Name: "gpt-4o"}}},
		{Name: "Gemini", Key: "gemini", Models: []catalog.Model{{Name: "gemini-pro"}}},
	}

	out := r.Providers(providers, func(p catalog.Provider) bool {
		return p.Key == "openai"
	})

	assert.Contains(t, out, "OpenAI key=openai present=true")
	assert.Contains(t, out, "Gemini key=gemini present=false")
	assert.Contains(t, out, "  gpt-4o")
}

func TestProvidersEmpty(t *testing.T) {
	assert.Equal(t, "No providers to show", New(true).Providers(nil, nil))
}

func TestKeysPlain(t *testing.T) {
	r := New(false)

	out := r.Keys([]KeyStatus{
		{Provider: "OpenAI", Key: "openai", EnvVar: "OPENAI_API_KEY", Present: true},
		{Provider: "Gemini", Key: "gemini", EnvVar: "GEMINI_API_KEY", Present: false},
	})

	assert.Contains(t, out, "env=OPENAI_API_KEY present=true")
	assert.Contains(t, out, "env=GEMINI_API_KEY present=false")
	// Diagnostic must never leak key material; it only ever sees names.
	assert.NotContains(t, out, "sk-")
}

func TestHistoryPlain(t *testing.T) {
	r := New(false)
	entries := []*history.Entry{
		{Params: "openai:gpt-4o", PickedAt: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)},
	}

	out := r.History(entries)
	assert.Contains(t, out, "openai:gpt-4o")

	assert.Equal(t, "No selections recorded", r.History(nil))
}

func TestSelection(t *testing.T) {
	out := New(false).Selection("OpenAI", "gpt-4o")
	assert.Equal(t, "selected provider=OpenAI model=gpt-4o", out)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a-much-longer-string", 10, "a-much-..."},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.max))
	}
}

func TestBoolIcon(t *testing.T) {
	assert.Equal(t, "✓", BoolIcon(true))
	assert.Equal(t, "✗", BoolIcon(false))
}
