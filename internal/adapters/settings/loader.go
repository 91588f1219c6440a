// Package settings loads the optional cbe.yaml project settings file.
// Values here are defaults only: CLI flags always take precedence.
package settings

import (
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Settings holds the overridable defaults a cbe.yaml file may declare.
type Settings struct {
	ManifestFile  string `yaml:"manifestFile"`
	EstimatesFile string `yaml:"estimatesFile"`
	Jobs          int    `yaml:"jobs"`
	DryRun        bool   `yaml:"dryRun"`
}

// Load reads path and returns its Settings. A missing file is not an
// error; it returns the zero-valued Settings, meaning "no overrides".
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a build-time argument, not untrusted input
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, zerr.Wrap(err, "failed to read settings file")
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, zerr.Wrap(err, "failed to parse settings file")
	}
	return s, nil
}
