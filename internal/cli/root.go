// Package cli implements the loadcut command-line interface.
//
// Commands:
//   - plan: load a manifest into a container and write exports
//   - compare: run the planner under several settings variants
//   - presets: list built-in container presets
//   - template: save, list and delete reusable manifests
//   - backup: export and import the config and templates
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried in the command context.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/LoadCut/internal/model"
	"github.com/piwi3910/LoadCut/internal/project"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globalOpts holds flags shared by every command.
type globalOpts struct {
	verbose   bool
	configDir string
}

func (g *globalOpts) configPath() string {
	return filepath.Join(g.configDir, "config.json")
}

func (g *globalOpts) templatesPath() string {
	return filepath.Join(g.configDir, "templates.json")
}

// loadConfig reads the application config, falling back to defaults when
// the file is unreadable.
func (g *globalOpts) loadConfig(logger *charmlog.Logger) model.AppConfig {
	cfg, err := project.LoadAppConfig(g.configPath())
	if err != nil {
		logger.Warn("ignoring unreadable config", "path", g.configPath(), "err", err)
		return model.DefaultAppConfig()
	}
	return cfg
}

// NewRootCommand builds the loadcut command tree.
func NewRootCommand() *cobra.Command {
	g := &globalOpts{}

	root := &cobra.Command{
		Use:           "loadcut",
		Short:         "LoadCut plans how boxes are loaded into a container",
		Long:          `LoadCut is a CLI tool that places boxes into a shipping container, van or pallet one at a time, keeping loads stable and compact, and exports the plan as PDF, labels, spreadsheets, DXF and PNG.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if g.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("loadcut %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&g.configDir, "config-dir", project.DefaultConfigDir(), "directory holding config.json and templates.json")

	root.AddCommand(newPlanCmd(g))
	root.AddCommand(newCompareCmd(g))
	root.AddCommand(newPresetsCmd())
	root.AddCommand(newTemplateCmd(g))
	root.AddCommand(newBackupCmd(g))

	return root
}

// Execute runs the loadcut CLI.
func Execute(ctx context.Context) error {
	root := NewRootCommand()
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	return root.ExecuteContext(ctx)
}
