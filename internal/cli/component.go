package cli

import (
	"github.com/jcli-dev/jcli/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	componentFunctional bool
	componentUseState   bool
	componentUseEffect  bool
)

func init() {
	componentCmd.Flags().BoolVarP(&componentFunctional, "functional", "f", false, "Generate a functional component")
	componentCmd.Flags().BoolVarP(&componentUseState, "useState", "s", false, "Include a state hook (implies --functional)")
	componentCmd.Flags().BoolVarP(&componentUseEffect, "useEffect", "e", false, "Include an effect hook (implies --functional)")
	rootCmd.AddCommand(componentCmd)
}

var componentCmd = &cobra.Command{
	Use:     "component <componentName>",
	Aliases: []string{"c"},
	Short:   "Generate a UI component",
	Long: `Generate a React or Vue component in the project's component directory.

The project type and directory are read from jcli.json. Existing files are
never overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGenerator()
		if err != nil {
			return err
		}

		res, err := g.Component(args[0], scaffold.ComponentOptions{
			Functional: componentFunctional,
			UseState:   componentUseState,
			UseEffect:  componentUseEffect,
		})
		if err != nil {
			return err
		}
		reportGenerated(cmd.OutOrStdout(), g, "component", res)
		return nil
	},
}
