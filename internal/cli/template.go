package cli

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/piwi3910/LoadCut/internal/model"
	"github.com/piwi3910/LoadCut/internal/project"
)

func newTemplateCmd(g *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage saved load templates",
	}
	cmd.AddCommand(newTemplateSaveCmd(g), newTemplateListCmd(g), newTemplateDeleteCmd(g))
	return cmd
}

func newTemplateSaveCmd(g *globalOpts) *cobra.Command {
	var (
		flags       settingsFlags
		description string
	)

	cmd := &cobra.Command{
		Use:   "save <name> <manifest>",
		Short: "Save a manifest, container and settings as a template",
		Long:  `Save stores the manifest with its resolved container and settings. A template with the same name is replaced.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg := g.loadConfig(logger)

			in, err := loadInput(args[1], logger)
			if err != nil {
				return err
			}
			container, settings, err := flags.resolve(cmd, in, cfg)
			if err != nil {
				return err
			}

			store, err := project.LoadTemplates(g.templatesPath())
			if err != nil {
				return err
			}
			if old := store.FindByName(args[0]); old != nil {
				logger.Info("replacing template", "name", old.Name, "id", old.ID)
				store.Remove(old.ID)
			}
			t := model.NewLoadTemplate(args[0], description, in.Project.Items, container, settings)
			store.Add(t)
			if err := project.SaveTemplates(g.templatesPath(), store); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s saved template %s (%s, %d lines)\n",
				styleSuccess.Render(iconSuccess), t.Name, t.ID, len(t.Items))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	return cmd
}

func newTemplateListCmd(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadTemplates(g.templatesPath())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(store.Templates) == 0 {
				fmt.Fprintln(out, styleDim.Render("no templates saved"))
				return nil
			}

			names := store.Names()
			sort.Sort(natural.StringSlice(names))
			for _, name := range names {
				t := store.FindByName(name)
				boxes := 0
				for _, it := range t.Items {
					boxes += it.Quantity
				}
				fmt.Fprintf(out, "  %s %s  %d boxes in %s\n",
					styleLabel.Width(24).Render(t.Name), styleDim.Render(t.ID), boxes, t.Container.Label)
				if t.Description != "" {
					fmt.Fprintf(out, "    %s\n", styleDim.Render(t.Description))
				}
			}
			return nil
		},
	}
}

func newTemplateDeleteCmd(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name|id>",
		Short: "Delete a saved template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadTemplates(g.templatesPath())
			if err != nil {
				return err
			}
			t := store.FindByName(args[0])
			if t == nil {
				t = store.FindByID(args[0])
			}
			if t == nil {
				return fmt.Errorf("template %q not found", args[0])
			}
			name := t.Name
			store.Remove(t.ID)
			if err := project.SaveTemplates(g.templatesPath(), store); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s deleted template %s\n", styleSuccess.Render(iconSuccess), name)
			return nil
		},
	}
}
