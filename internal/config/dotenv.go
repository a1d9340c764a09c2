package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvFiles loads .env files into the process environment.
// Extra paths are loaded first, then ./.env, then ~/.modelpick/.env.
// godotenv never overrides variables already set, so the process
// environment wins and earlier files win over later ones.
// Missing files are skipped; unreadable or malformed files are errors.
func LoadEnvFiles(extra ...string) error {
	candidates := append([]string{}, extra...)
	candidates = append(candidates, ".env", GetPaths().EnvFile)

	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	// Drop cached snapshots so Env() and GetPaths() see the loaded values.
	ResetEnv()
	return nil
}
