package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/LoadCut/internal/model"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in container presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render("Container presets (interior, mm)"))
			for _, p := range model.ContainerPresets {
				dims := fmt.Sprintf("%.0f x %.0f x %.0f", p.Width, p.Height, p.Depth)
				vol := fmt.Sprintf("%.1f m³", p.ToContainer().Volume()/1e9)
				fmt.Fprintf(out, "  %s %s  %s\n", styleLabel.Width(22).Render(p.Name), dims, styleDim.Render(vol))
			}
			return nil
		},
	}
}
