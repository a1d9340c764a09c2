package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joss/modelpick/internal/catalog"
)

func envWith(vars map[string]string) catalog.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestSelectProviderCascades(t *testing.T) {
	s := New(catalog.Builtin())

	require.NoError(t, s.SelectProvider("Anthropic"))
	assert.Equal(t, "Anthropic", s.Provider())
	assert.Equal(t, "claude-3-sonnet-20240229", s.Model())

	// Switching providers resets the model to the new first entry.
	require.NoError(t, s.SelectModel("claude-2.1"))
	require.NoError(t, s.SelectProvider("Gemini"))
	assert.Equal(t, "gemini-pro", s.Model())
}

func TestSelectProviderUnknown(t *testing.T) {
	s := New(catalog.Builtin())

	err := s.SelectProvider("Mistral")
	assert.ErrorIs(t, err, ErrUnknownProvider)
	assert.Empty(t, s.Provider())
}

func TestSelectProviderWithoutModels(t *testing.T) {
	cat := catalog.New(
		[]catalog.Provider{{Name: "Empty", Key: "empty"}},
		map[string]string{"empty": "EMPTY_API_KEY"},
	)
	s := New(cat)

	err := s.SelectProvider("Empty")
	assert.ErrorIs(t, err, ErrNoModels)

	// Provider sticks, model stays unset, params unavailable.
	assert.Equal(t, "Empty", s.Provider())
	assert.Empty(t, s.Model())
	_, err = s.Params()
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestSelectModel(t *testing.T) {
	s := New(catalog.Builtin())

	t.Run("before provider", func(t *testing.T) {
		err := New(catalog.Builtin()).SelectModel("gpt-4o")
		assert.ErrorIs(t, err, ErrNoSelection)
	})

	require.NoError(t, s.SelectProvider("OpenAI"))

	t.Run("member model", func(t *testing.T) {
		require.NoError(t, s.SelectModel("gpt-5-nano"))
		assert.Equal(t, "gpt-5-nano", s.Model())
	})

	t.Run("model from another provider", func(t *testing.T) {
		err := s.SelectModel("claude-2.1")
		assert.ErrorIs(t, err, ErrUnknownModel)
		// Previous choice is kept.
		assert.Equal(t, "gpt-5-nano", s.Model())
	})
}

func TestSelectDefault(t *testing.T) {
	t.Run("first available provider", func(t *testing.T) {
		s := New(catalog.Builtin())
		lookup := envWith(map[string]string{
			"GEMINI_API_KEY":    "g",
			"ANTHROPIC_API_KEY": "a",
		})

		require.NoError(t, s.SelectDefault(lookup))
		assert.Equal(t, "Gemini", s.Provider())
		assert.Equal(t, "gemini-pro", s.Model())
	})

	t.Run("no keys anywhere", func(t *testing.T) {
		s := New(catalog.Builtin())
		err := s.SelectDefault(envWith(nil))
		assert.ErrorIs(t, err, ErrNoSelection)
	})
}

func TestParams(t *testing.T) {
	s := New(catalog.Builtin())

	_, err := s.Params()
	assert.ErrorIs(t, err, ErrNoSelection)

	require.NoError(t, s.SelectProvider("Deepseek"))
	require.NoError(t, s.SelectModel("deepseek-coder"))

	params, err := s.Params()
	require.NoError(t, err)
	assert.Equal(t, "deepseek:deepseek-coder", params)
}

func TestParamsFormat(t *testing.T) {
	assert.Equal(t, "openai:gpt-4o", Params("openai", "gpt-4o"))
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		in      string
		key     string
		model   string
		wantErr bool
	}{
		{"openai:gpt-4o", "openai", "gpt-4o", false},
		{"anthropic:claude-2.1", "anthropic", "claude-2.1", false},
		{"no-colon", "", "", true},
		{":model-only", "", "", true},
		{"key-only:", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			key, model, err := ParseParams(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.model, model)
		})
	}
}

func TestSelectParams(t *testing.T) {
	s := New(catalog.Builtin())

	require.NoError(t, s.SelectParams("gemini:gemini-flash"))
	assert.Equal(t, "Gemini", s.Provider())
	assert.Equal(t, "gemini-flash", s.Model())

	assert.ErrorIs(t, s.SelectParams("mistral:tiny"), ErrUnknownProvider)
	assert.ErrorIs(t, s.SelectParams("openai:claude-2.1"), ErrUnknownModel)
	assert.Error(t, s.SelectParams("garbage"))
}
