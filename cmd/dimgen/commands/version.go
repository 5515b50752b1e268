package commands

import (
	"github.com/spf13/cobra"

	"github.com/MacroPower/dimgen/pkg/version"
)

func GetVersionString() string {
	return version.String()
}

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the dimgen CLI",
		Args:  cobra.NoArgs,
		Run: func(cc *cobra.Command, _ []string) {
			cc.Println(GetVersionString())
		},
	}
}
