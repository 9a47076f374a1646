package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/LoadCut/internal/project"
)

func newBackupCmd(g *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or import the config and templates",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "export <file>",
		Short: "Write the config and templates to a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg := g.loadConfig(logger)
			templates, err := project.LoadTemplates(g.templatesPath())
			if err != nil {
				return err
			}
			if err := project.ExportAllData(args[0], cfg, templates); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s backup written to %s (%d templates)\n",
				styleSuccess.Render(iconSuccess), args[0], len(templates.Templates))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Restore the config and templates from a backup file",
		Long:  `Import replaces the current config and templates with the backup contents.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			data, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			logger.Debug("read backup", "version", data.Version, "created", data.CreatedAt)
			if err := project.SaveAppConfig(g.configPath(), data.Config); err != nil {
				return err
			}
			if err := project.SaveTemplates(g.templatesPath(), data.Templates); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s restored config and %d templates\n",
				styleSuccess.Render(iconSuccess), len(data.Templates.Templates))
			return nil
		},
	})

	return cmd
}
