package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(modelCmd)
}

var modelCmd = &cobra.Command{
	Use:     "model <name>",
	Aliases: []string{"m"},
	Short:   "Generate an objection model",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGenerator()
		if err != nil {
			return err
		}
		res, err := g.Model(args[0])
		if err != nil {
			return err
		}
		reportGenerated(cmd.OutOrStdout(), g, "model", res)
		return nil
	},
}
