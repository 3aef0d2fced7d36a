package cli

import (
	"fmt"
	"strings"

	"github.com/jcli-dev/jcli/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long:  configLong(),
}

// configLong lists the recognized keys with their environment overrides.
func configLong() string {
	keys := []struct{ key, desc string }{
		{config.KeyTemplatesDir, "directory holding the project templates"},
		{config.KeyPackageManager, "npm, yarn or pnpm (default: detected from lockfiles)"},
		{config.KeyComponentDir, "default answer for the component directory prompt"},
		{config.KeyModelDir, "default answer for the model directory prompt"},
		{config.KeyServiceDir, "default answer for the service directory prompt"},
		{config.KeyGraphQLDir, "default answer for the GraphQL directory prompt"},
	}

	var b strings.Builder
	b.WriteString("Read and write jCli configuration stored at ~/.jcli/config.yaml.\n\n")
	b.WriteString("Keys (environment override in brackets):\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "  %-22s %s [%s]\n", k.key, k.desc, config.EnvName(k.key))
	}
	return strings.TrimRight(b.String(), "\n")
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
