package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/LoadCut/internal/engine"
	"github.com/piwi3910/LoadCut/internal/export"
	"github.com/piwi3910/LoadCut/internal/model"
	"github.com/piwi3910/LoadCut/internal/project"
)

// Export format names accepted by --format.
const (
	formatPDF    = "pdf"
	formatLabels = "labels"
	formatXLSX   = "xlsx"
	formatDXF    = "dxf"
	formatPNG    = "png"
	formatJSON   = "json"
)

var allFormats = []string{formatPDF, formatLabels, formatXLSX, formatDXF, formatPNG, formatJSON}

// estimateVoidPercent is the void allowance used for the container estimate
// printed with every plan.
const estimateVoidPercent = 15

const maxRecentProjects = 10

type planOpts struct {
	settings settingsFlags
	out      string
	formats  []string
	template string
	pngSize  int
}

func newPlanCmd(g *globalOpts) *cobra.Command {
	opts := planOpts{}

	cmd := &cobra.Command{
		Use:   "plan [manifest]",
		Short: "Load a box manifest into a container and export the plan",
		Long: `Plan reads a manifest (.csv, .xlsx, .toml plan or saved .json project),
places every box it can and writes the requested exports.

Boxes that do not fit are listed as overflow. Use --template instead of a
manifest to plan a saved template.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.template != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			return runPlan(cmd, g, input, opts)
		},
	}

	opts.settings.register(cmd)
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output base path (default: manifest name next to the manifest)")
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", nil, "exports to write: "+strings.Join(allFormats, ","))
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "plan a saved template instead of a manifest")
	cmd.Flags().IntVar(&opts.pngSize, "png-size", export.DefaultPreviewSize, "longest side of the PNG preview in pixels")

	return cmd
}

func runPlan(cmd *cobra.Command, g *globalOpts, input string, opts planOpts) error {
	logger := loggerFromContext(cmd.Context())
	cfg := g.loadConfig(logger)

	in, base, err := planInput(g, input, opts, logger)
	if err != nil {
		return err
	}
	if opts.out != "" {
		base = strings.TrimSuffix(opts.out, project.Extension)
	}

	container, settings, err := opts.settings.resolve(cmd, in, cfg)
	if err != nil {
		return err
	}

	formats := opts.formats
	if !cmd.Flags().Changed("format") {
		formats = cfg.DefaultExportFormats
	}
	formats, err = normalizeFormats(formats)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	planner := engine.New(settings)
	planner.Logger = logger
	result := planner.Plan(in.Project.Items, container)
	prog.done(fmt.Sprintf("Planned %d boxes, %d overflow", result.PlacedCount(), len(result.Overflow)))

	violations := engine.CheckPlan(result, settings)
	for _, msg := range engine.FormatViolations(violations) {
		logger.Warn(msg)
	}

	est := model.CalculateLoadEstimate(in.Project.Items, container, settings.Spacing, estimateVoidPercent)
	printSummary(cmd.OutOrStdout(), in.Project.Name, result, violations, est)

	p := in.Project
	p.Container = container
	p.Settings = settings
	p.Result = &result

	written, err := writeExports(base, p, formats, opts.pngSize, logger)
	for _, path := range written {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styleSuccess.Render(iconArrow), path)
	}
	if err != nil {
		return err
	}

	if slices.Contains(formats, formatJSON) {
		cfg.AddRecentProject(base+project.Extension, maxRecentProjects)
		if err := project.SaveAppConfig(g.configPath(), cfg); err != nil {
			logger.Warn("could not update recent projects", "err", err)
		}
	}
	return nil
}

// planInput resolves the manifest or template to plan and the default
// output base path.
func planInput(g *globalOpts, input string, opts planOpts, logger *log.Logger) (loadedInput, string, error) {
	if opts.template == "" {
		in, err := loadInput(input, logger)
		if err != nil {
			return loadedInput{}, "", err
		}
		base := strings.TrimSuffix(input, filepath.Ext(input))
		base = strings.TrimSuffix(base, ".loadcut")
		return in, base, nil
	}

	store, err := project.LoadTemplates(g.templatesPath())
	if err != nil {
		return loadedInput{}, "", err
	}
	t := store.FindByName(opts.template)
	if t == nil {
		t = store.FindByID(opts.template)
	}
	if t == nil {
		return loadedInput{}, "", fmt.Errorf("template %q not found", opts.template)
	}
	logger.Debug("using template", "name", t.Name, "id", t.ID)
	p := t.ToProject(t.Name)
	return loadedInput{Project: p, HasContainer: true, HasSettings: true}, sanitizeFileName(t.Name), nil
}

// normalizeFormats lowercases, dedupes and validates export format names.
func normalizeFormats(formats []string) ([]string, error) {
	var out []string
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(out, f) {
			continue
		}
		if !slices.Contains(allFormats, f) {
			return nil, fmt.Errorf("unknown export format %q: use %s", f, strings.Join(allFormats, ", "))
		}
		out = append(out, f)
	}
	return out, nil
}

// writeExports writes each format next to base and returns the paths
// written. It stops at the first failure.
func writeExports(base string, p model.Project, formats []string, pngSize int, logger *log.Logger) ([]string, error) {
	if err := os.MkdirAll(filepath.Dir(base), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := *p.Result
	var written []string
	for _, f := range formats {
		var (
			path string
			err  error
		)
		switch f {
		case formatPDF:
			path = base + ".pdf"
			err = export.ExportPDF(path, result, p.Settings)
		case formatLabels:
			path = base + "-labels.pdf"
			err = export.ExportLabels(path, result)
		case formatXLSX:
			path = base + ".xlsx"
			err = export.ExportExcel(path, result)
		case formatDXF:
			path = base + ".dxf"
			err = export.ExportDXF(path, result)
		case formatPNG:
			path = base + ".png"
			err = export.ExportPNG(path, result, pngSize)
		case formatJSON:
			path, err = project.SaveProject(base, p)
		}
		if err != nil {
			return written, fmt.Errorf("failed to write %s export: %w", f, err)
		}
		logger.Debug("wrote export", "format", f, "path", path)
		written = append(written, path)
	}
	return written, nil
}

// sanitizeFileName replaces characters that are awkward in file names.
func sanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "plan"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, name)
}
