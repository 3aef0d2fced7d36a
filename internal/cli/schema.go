package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:     "schema <name>",
	Aliases: []string{"g"},
	Short:   "Generate GraphQL type definitions and resolvers",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGenerator()
		if err != nil {
			return err
		}
		res, err := g.Schema(args[0])
		if err != nil {
			return err
		}
		reportGenerated(cmd.OutOrStdout(), g, "schema", res)
		return nil
	},
}
