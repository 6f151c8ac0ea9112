package cli

import (
	"github.com/spf13/cobra"
)

func (b BuildInfo) TableHeaders() []string { return []string{"Version", "Commit", "Built"} }

func (b BuildInfo) TableRows(_ *palette) [][]string {
	return [][]string{{b.Version, b.Commit, b.BuildDate}}
}

// NewVersionCmd prints build information.
func NewVersionCmd(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return PrintResult(cmd, build)
		},
	}
}

//Personal.AI order the ending
