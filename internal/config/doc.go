// Package config manages user-level settings stored at ~/.jcli/config.yaml.
// Settings can be overridden with JCLI_* environment variables and cover the
// template root, the preferred package manager, and the default directories
// offered by the init prompts.
package config
