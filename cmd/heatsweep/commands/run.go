package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/heatsweep/internal/adapters/config"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute the spectral density of heat transfer at a list of frequencies",
		Example: "  heatsweep run --geometry Two.yaml --omega 0.1 --omega 0.2 --cache Two.cache\n" +
			"  heatsweep run --geometry Two.yaml --transfile Two.trans --omegafile omega.list",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return c.app.Run(cmd.Context(), opts)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}
