package commands

import (
	"github.com/spf13/cobra"

	"github.com/MacroPower/dimgen/pkg/dimgen"
)

// NewGroupsCmd returns the groups command.
func NewGroupsCmd(args *RootArgs) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "groups TABLE.csv",
		Short: "Show how quantities are grouped by dimensionality",
		Args:  tableArg,
		RunE: func(cc *cobra.Command, posArgs []string) error {
			f, err := dimgen.ParseFormat(format)
			if err != nil {
				return err
			}

			g, err := args.NewGenerator()
			if err != nil {
				return err
			}

			return g.Inspect(cc.OutOrStdout(), posArgs[0], f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", string(dimgen.FormatYAML), "Output format (yaml, json)")

	return cmd
}
