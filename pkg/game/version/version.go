// Package version reads the game version from its packaging manifest.
package version

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Fallback is reported when the manifest cannot supply a version
const Fallback = "dev"

type manifest struct {
	Project struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"project"`
}

// Lookup returns [project].version from the TOML manifest at path
func Lookup(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read manifest: %w", err)
	}

	var m manifest
	if err := toml.Unmarshal(content, &m); err != nil {
		return "", fmt.Errorf("parse manifest: %w", err)
	}
	if m.Project.Version == "" {
		return "", errors.New("manifest has no [project] version")
	}
	return m.Project.Version, nil
}

// LookupOr returns the manifest version, or Fallback and the error that
// prevented reading it
func LookupOr(path string) (string, error) {
	v, err := Lookup(path)
	if err != nil {
		return Fallback, err
	}
	return v, nil
}
