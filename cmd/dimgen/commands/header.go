package commands

import (
	"github.com/spf13/cobra"
)

// NewHeaderCmd returns the header command.
func NewHeaderCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "header TABLE.csv",
		Short: "Generate quantity identifier defines",
		Long: `Generate one #define per quantity identifier in the table, mapping the
identifier to its lower-cased label.`,
		Args: tableArg,
		RunE: func(cc *cobra.Command, posArgs []string) error {
			g, err := args.NewGenerator()
			if err != nil {
				return err
			}

			return g.GenerateHeader(cc.OutOrStdout(), posArgs[0])
		},
	}
}
