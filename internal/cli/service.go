package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serviceCmd)
}

var serviceCmd = &cobra.Command{
	Use:     "service <name>",
	Aliases: []string{"s"},
	Short:   "Generate a service module",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGenerator()
		if err != nil {
			return err
		}
		res, err := g.Service(args[0])
		if err != nil {
			return err
		}
		reportGenerated(cmd.OutOrStdout(), g, "service", res)
		return nil
	},
}
