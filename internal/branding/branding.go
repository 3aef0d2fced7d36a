// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	ManifestFile string `yaml:"manifest_file"`
	Banner       string `yaml:"banner"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:      "jcli",
			DisplayName:  "jCli",
			Description:  "Scaffolding tool for SaaS-Framework projects",
			HomeDir:      ".jcli",
			EnvPrefix:    "JCLI",
			ManifestFile: "jcli.json",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "jcli").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "jCli").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".jcli").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "JCLI").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ManifestFile returns the name of the project manifest written by init.
func ManifestFile() string { load(); return defaults.ManifestFile }

// Banner returns the ASCII-art banner printed before every command. Falls
// back to the display name when no art is configured.
func Banner() string {
	load()
	if strings.TrimSpace(defaults.Banner) == "" {
		return defaults.DisplayName
	}
	return strings.TrimRight(defaults.Banner, "\n")
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("home") → "JCLI_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
