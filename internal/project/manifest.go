package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jcli-dev/jcli/internal/branding"
)

// ErrNoManifest is returned by Load when the project has not been initialized.
var ErrNoManifest = errors.New("no project manifest found")

// ManifestPath returns the path of the manifest inside projectDir.
func ManifestPath(projectDir string) string {
	return filepath.Join(projectDir, branding.ManifestFile())
}

// Marshal encodes cfg as pretty-printed JSON with a trailing newline.
func Marshal(cfg ProjectConfig) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling project config: %w", err)
	}
	return append(data, '\n'), nil
}

// Save validates cfg and writes it to the manifest in projectDir, replacing
// any manifest already there.
func Save(projectDir string, cfg ProjectConfig) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	path := ManifestPath(projectDir)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing project manifest %s: %w", path, err)
	}
	return nil
}

// Load reads and validates the manifest in projectDir.
func Load(projectDir string) (ProjectConfig, error) {
	var cfg ProjectConfig

	path := ManifestPath(projectDir)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("%w at %s (run `%s init` first)", ErrNoManifest, path, branding.CLIName())
	}
	if err != nil {
		return cfg, fmt.Errorf("reading project manifest: %w", err)
	}

	if err := ValidateDocument(data); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing project manifest %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
