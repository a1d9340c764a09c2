// Package config provides centralized configuration management.
// All environment access for modelpick goes through here.
package config

import (
	"os"
	"path/filepath"
	"sync"
)

// MPEnv holds all modelpick environment variables.
type MPEnv struct {
	// OpenAIKey is the OpenAI API key (OPENAI_API_KEY)
	OpenAIKey string

	// DeepseekKey is the Deepseek API key (DEEPSEEK_API_KEY)
	DeepseekKey string

	// GeminiKey is the Gemini API key (GEMINI_API_KEY)
	GeminiKey string

	// AnthropicKey is the Anthropic API key (ANTHROPIC_API_KEY)
	AnthropicKey string

	// Home overrides the modelpick home directory (MODELPICK_HOME)
	Home string

	// NoColor disables colored output (MODELPICK_NO_COLOR)
	NoColor bool

	// DefaultModel is the fallback model params string (DEFAULT_MODEL)
	DefaultModel string
}

var (
	env     *MPEnv
	envOnce sync.Once
)

// Env returns the singleton environment configuration.
// Thread-safe, loads once on first call.
func Env() *MPEnv {
	envOnce.Do(func() {
		env = &MPEnv{
			OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
			DeepseekKey:  os.Getenv("DEEPSEEK_API_KEY"),
			GeminiKey:    os.Getenv("GEMINI_API_KEY"),
			AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
			Home:         os.Getenv("MODELPICK_HOME"),
			NoColor:      os.Getenv("MODELPICK_NO_COLOR") == "1",
			DefaultModel: os.Getenv("DEFAULT_MODEL"),
		}
	})
	return env
}

// ResetEnv resets the cached environment and paths (for testing).
func ResetEnv() {
	envOnce = sync.Once{}
	env = nil
	pathsOnce = sync.Once{}
	paths = nil
}

// Paths holds standard modelpick directory paths.
type Paths struct {
	// Home is the modelpick home directory (~/.modelpick)
	Home string

	// Data is the data directory (~/.modelpick/data)
	Data string

	// CatalogFile is the user catalog overlay (~/.modelpick/catalog.yaml)
	CatalogFile string

	// EnvFile is the .env file path (~/.modelpick/.env)
	EnvFile string

	// AuditLog is the operation log path (~/.modelpick/audit.log)
	AuditLog string
}

var (
	paths     *Paths
	pathsOnce sync.Once
)

// GetPaths returns the singleton paths configuration.
// MODELPICK_HOME overrides the default ~/.modelpick.
func GetPaths() *Paths {
	pathsOnce.Do(func() {
		mpHome := Env().Home
		if mpHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				home = "."
			}
			mpHome = filepath.Join(home, ".modelpick")
		}

		paths = &Paths{
			Home:        mpHome,
			Data:        filepath.Join(mpHome, "data"),
			CatalogFile: filepath.Join(mpHome, "catalog.yaml"),
			EnvFile:     filepath.Join(mpHome, ".env"),
			AuditLog:    filepath.Join(mpHome, "audit.log"),
		}
	})
	return paths
}

// Path returns a path under the modelpick home directory.
func Path(parts ...string) string {
	p := GetPaths()
	allParts := append([]string{p.Home}, parts...)
	return filepath.Join(allParts...)
}

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
