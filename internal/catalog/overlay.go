package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileCatalog is the on-disk shape of a user catalog overlay.
type fileCatalog struct {
	Providers []fileProvider `yaml:"providers"`
}

type fileProvider struct {
	Name   string   `yaml:"name"`
	Key    string   `yaml:"key"`
	EnvVar string   `yaml:"env_var,omitempty"`
	Models []string `yaml:"models"`
}

// LoadOverlay merges a user catalog file into c and returns the result.
// A missing file is not an error; the catalog is returned unchanged.
// An overlay entry whose name matches an existing provider replaces that
// provider's key and model list; unknown names are appended in file order.
func LoadOverlay(c *Catalog, path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	providers := c.Providers()
	envVars := make(map[string]string, len(c.envVars))
	for k, v := range c.envVars {
		envVars[k] = v
	}

	for _, fp := range fc.Providers {
		if fp.Name == "" || fp.Key == "" {
			return nil, fmt.Errorf("catalog file %s: provider entries need name and key", path)
		}
		p := Provider{Name: fp.Name, Key: fp.Key}
		for _, m := range fp.Models {
			p.Models = append(p.Models, Model{Name: m})
		}
		if fp.EnvVar != "" {
			envVars[fp.Key] = fp.EnvVar
		}

		replaced := false
		for i := range providers {
			if providers[i].Name == p.Name {
				providers[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			providers = append(providers, p)
		}
	}

	return New(providers, envVars), nil
}

// defaultOverlay is written by WriteDefault as a starting point.
const defaultOverlay = `# modelpick user catalog.
# Entries here extend the built-in catalog. A provider whose name matches a
# built-in one replaces its key and model list.
#
# providers:
#   - name: Ollama
#     key: ollama
#     env_var: OLLAMA_API_KEY
#     models:
#       - llama3.1
#       - mistral
providers: []
`

// WriteDefault creates a commented catalog template at path.
// Refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("catalog file already exists: %s", path)
	}
	return os.WriteFile(path, []byte(defaultOverlay), 0644)
}
