package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/heatsweep/internal/adapters/plot"
	"go.trai.ch/heatsweep/internal/core/domain"
	"gonum.org/v1/plot/vg"
)

func (c *CLI) newPlotCmd() *cobra.Command {
	var (
		out           string
		title         string
		width, height float64
	)

	cmd := &cobra.Command{
		Use:   "plot <file.byOmega>",
		Short: "Render a frequency-resolved output file as a spectrum",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if out == "" {
				out = domain.FileBase(args[0]) + ".png"
			}
			return c.app.Plot(args[0], out, plot.Options{
				Title:  title,
				Width:  vg.Length(width) * vg.Inch,
				Height: vg.Length(height) * vg.Inch,
			})
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "image file, format from extension (default <input base>.png)")
	cmd.Flags().StringVar(&title, "title", "", "plot title (default input base name)")
	cmd.Flags().Float64Var(&width, "width", 6, "image width in inches")
	cmd.Flags().Float64Var(&height, "height", 4, "image height in inches")
	return cmd
}
