package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envWith returns a LookupFunc backed by a fixed map.
func envWith(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestBuiltinOrder(t *testing.T) {
	c := Builtin()

	var names []string
	for _, p := range c.Providers() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"OpenAI", "Deepseek", "Gemini", "Anthropic"}, names)

	openai, ok := c.Provider("OpenAI")
	require.True(t, ok)
	assert.Equal(t, "openai", openai.Key)
	assert.Equal(t, []string{"gpt-4o", "gpt-3.5-turbo", "gpt-5-nano"}, openai.ModelNames())
}

func TestKeyEnvVar(t *testing.T) {
	c := Builtin()

	assert.Equal(t, "OPENAI_API_KEY", c.KeyEnvVar("openai"))
	assert.Equal(t, "DEEPSEEK_API_KEY", c.KeyEnvVar("deepseek"))
	assert.Equal(t, "GEMINI_API_KEY", c.KeyEnvVar("gemini"))
	assert.Equal(t, "ANTHROPIC_API_KEY", c.KeyEnvVar("anthropic"))
	assert.Empty(t, c.KeyEnvVar("nope"))
}

func TestAvailable(t *testing.T) {
	c := Builtin()

	tests := []struct {
		name string
		vars map[string]string
		want []string
	}{
		{
			name: "no keys",
			vars: map[string]string{},
			want: nil,
		},
		{
			name: "single key",
			vars: map[string]string{"ANTHROPIC_API_KEY": "sk-ant"},
			want: []string{"Anthropic"},
		},
		{
			name: "empty value is absent",
			vars: map[string]string{"OPENAI_API_KEY": ""},
			want: nil,
		},
		{
			name: "catalog order preserved",
			vars: map[string]string{
				"GEMINI_API_KEY": "g",
				"OPENAI_API_KEY": "o",
			},
			want: []string{"OpenAI", "Gemini"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, p := range c.Available(envWith(tt.vars)) {
				got = append(got, p.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAvailableNotCached(t *testing.T) {
	c := Builtin()
	vars := map[string]string{}
	lookup := envWith(vars)

	assert.Empty(t, c.Available(lookup))

	// The key appearing later must be picked up on the next call.
	vars["OPENAI_API_KEY"] = "sk"
	assert.Len(t, c.Available(lookup), 1)
}

func TestProviderByKey(t *testing.T) {
	c := Builtin()

	p, ok := c.ProviderByKey("gemini")
	require.True(t, ok)
	assert.Equal(t, "Gemini", p.Name)

	_, ok = c.ProviderByKey("mistral")
	assert.False(t, ok)
}

func TestProviderModelHelpers(t *testing.T) {
	p := Provider{Name: "X", Key: "x", Models: []Model{{Name: "a"}, {Name: "b"}}}

	assert.True(t, p.HasModel("a"))
	assert.False(t, p.HasModel("c"))

	first, ok := p.FirstModel()
	require.True(t, ok)
	assert.Equal(t, "a", first.Name)

	_, ok = Provider{}.FirstModel()
	assert.False(t, ok)
}

func TestMatchModels(t *testing.T) {
	c := Builtin()

	got, err := c.MatchModels("gpt-*")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "OpenAI", got[0].Name)
	assert.Equal(t, []string{"gpt-4o", "gpt-3.5-turbo", "gpt-5-nano"}, got[0].ModelNames())

	got, err = c.MatchModels("*-chat")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"deepseek-chat"}, got[0].ModelNames())

	got, err = c.MatchModels("nothing-*")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = c.MatchModels("bad[")
	assert.Error(t, err)
}

func TestLoadOverlay(t *testing.T) {
	t.Run("missing file is a no-op", func(t *testing.T) {
		c := Builtin()
		got, err := LoadOverlay(c, filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, c.Providers(), got.Providers())
	})

	t.Run("appends new provider and env var", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
providers:
  - name: Ollama
    key: ollama
    env_var: OLLAMA_API_KEY
    models:
      - llama3.1
      - mistral
`), 0644))

		got, err := LoadOverlay(Builtin(), path)
		require.NoError(t, err)

		providers := got.Providers()
		require.Len(t, providers, 5)
		assert.Equal(t, "Ollama", providers[4].Name)
		assert.Equal(t, []string{"llama3.1", "mistral"}, providers[4].ModelNames())
		assert.Equal(t, "OLLAMA_API_KEY", got.KeyEnvVar("ollama"))

		avail := got.Available(envWith(map[string]string{"OLLAMA_API_KEY": "x"}))
		require.Len(t, avail, 1)
		assert.Equal(t, "Ollama", avail[0].Name)
	})

	t.Run("replaces existing provider models", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
providers:
  - name: OpenAI
    key: openai
    models:
      - gpt-4o
`), 0644))

		got, err := LoadOverlay(Builtin(), path)
		require.NoError(t, err)

		p, ok := got.Provider("OpenAI")
		require.True(t, ok)
		assert.Equal(t, []string{"gpt-4o"}, p.ModelNames())
		assert.Len(t, got.Providers(), 4)
	})

	t.Run("rejects entries without key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
providers:
  - name: Broken
    models: [x]
`), 0644))

		_, err := LoadOverlay(Builtin(), path)
		assert.Error(t, err)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("providers: ["), 0644))

		_, err := LoadOverlay(Builtin(), path)
		assert.Error(t, err)
	})
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")

	require.NoError(t, WriteDefault(path))

	// Template must parse as an empty overlay.
	got, err := LoadOverlay(Builtin(), path)
	require.NoError(t, err)
	assert.Len(t, got.Providers(), 4)

	// Never overwrite.
	assert.Error(t, WriteDefault(path))
}
