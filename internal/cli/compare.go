package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/LoadCut/internal/engine"
)

func newCompareCmd(g *globalOpts) *cobra.Command {
	var flags settingsFlags

	cmd := &cobra.Command{
		Use:   "compare <manifest>",
		Short: "Plan a manifest under several settings variants",
		Long: `Compare plans the same manifest with the current settings and a few
variants (other sort order, relaxed support, no spacing, every orientation)
and prints one row per scenario. The best row is marked with *.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg := g.loadConfig(logger)

			in, err := loadInput(args[0], logger)
			if err != nil {
				return err
			}
			container, settings, err := flags.resolve(cmd, in, cfg)
			if err != nil {
				return err
			}

			scenarios := engine.BuildDefaultScenarios(settings)
			prog := newProgress(logger)
			results := engine.CompareScenarios(scenarios, in.Project.Items, container)
			prog.done(fmt.Sprintf("Compared %d scenarios", len(results)))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render(fmt.Sprintf("%s in %s", in.Project.Name, container.Label)))
			printScenarioTable(out, results)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
