package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jcli-dev/jcli/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyTemplatesDir   = "templates_dir"
	KeyPackageManager = "package_manager"
	KeyComponentDir   = "defaults.componentDir"
	KeyModelDir       = "defaults.modelDir"
	KeyServiceDir     = "defaults.serviceDir"
	KeyGraphQLDir     = "defaults.graphQLDir"
)

// Built-in defaults for the directory prompts.
const (
	DefaultComponentDir = "/src/components"
	DefaultModelDir     = "/src/models"
	DefaultServiceDir   = "/src/services"
	DefaultGraphQLDir   = "/src/graphql"
)

// Dir returns the path to the jcli config directory (~/.jcli/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.jcli/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// envKeyReplacer maps nested keys to env names: defaults.modelDir is read
// from JCLI_DEFAULTS_MODELDIR.
var envKeyReplacer = strings.NewReplacer(".", "_")

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return branding.EnvVar(envKeyReplacer.Replace(key))
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	viper.SetDefault(KeyComponentDir, DefaultComponentDir)
	viper.SetDefault(KeyModelDir, DefaultModelDir)
	viper.SetDefault(KeyServiceDir, DefaultServiceDir)
	viper.SetDefault(KeyGraphQLDir, DefaultGraphQLDir)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Dirs holds the default directories offered by the init prompts.
type Dirs struct {
	ComponentDir string
	ModelDir     string
	ServiceDir   string
	GraphQLDir   string
}

// DefaultDirs returns the configured prompt defaults, falling back to the
// built-in /src/... layout for keys that are unset.
func DefaultDirs() Dirs {
	return Dirs{
		ComponentDir: orDefault(Get(KeyComponentDir), DefaultComponentDir),
		ModelDir:     orDefault(Get(KeyModelDir), DefaultModelDir),
		ServiceDir:   orDefault(Get(KeyServiceDir), DefaultServiceDir),
		GraphQLDir:   orDefault(Get(KeyGraphQLDir), DefaultGraphQLDir),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
