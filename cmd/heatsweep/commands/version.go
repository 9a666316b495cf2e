package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/heatsweep/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "heatsweep version %s (commit %s, built %s)\n",
				build.Version, build.Commit, build.Date)
		},
	}
}
