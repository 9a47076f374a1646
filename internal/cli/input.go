package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/LoadCut/internal/importer"
	"github.com/piwi3910/LoadCut/internal/model"
	"github.com/piwi3910/LoadCut/internal/project"
)

// loadedInput is a manifest read from disk. Container and Settings are only
// meaningful when the file carried them (TOML plans and saved projects).
type loadedInput struct {
	Project      model.Project
	HasContainer bool
	HasSettings  bool
}

// loadInput reads a manifest by file extension: .csv, .xlsx, .toml or a
// saved .json project.
func loadInput(path string, logger *log.Logger) (loadedInput, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".csv", ".txt", ".tsv":
		res := importer.ImportCSV(path)
		return manifestInput(name, res, logger)
	case ".xlsx", ".xlsm":
		res := importer.ImportExcel(path)
		return manifestInput(name, res, logger)
	case ".toml":
		res := importer.ImportPlan(path)
		for _, w := range res.Warnings {
			logger.Warn(w)
		}
		if len(res.Errors) > 0 {
			return loadedInput{}, fmt.Errorf("%s: %s", path, strings.Join(res.Errors, "; "))
		}
		return loadedInput{Project: res.Project, HasContainer: true, HasSettings: true}, nil
	case ".json":
		p, err := project.LoadProject(path)
		if err != nil {
			return loadedInput{}, err
		}
		return loadedInput{Project: p, HasContainer: true, HasSettings: true}, nil
	default:
		return loadedInput{}, fmt.Errorf("unsupported input %q: use .csv, .xlsx, .toml or .json", path)
	}
}

// manifestInput turns an importer result into a project. Row errors are
// logged and skipped; a manifest with no usable rows is an error.
func manifestInput(name string, res importer.ImportResult, logger *log.Logger) (loadedInput, error) {
	for _, w := range res.Warnings {
		logger.Debug(w)
	}
	for _, e := range res.Errors {
		logger.Error(e)
	}
	if len(res.Items) == 0 {
		return loadedInput{}, fmt.Errorf("no boxes imported from %s", name)
	}
	p := model.NewProject()
	p.Name = name
	p.Items = res.Items
	return loadedInput{Project: p}, nil
}

// parseContainer parses "WxHxD" in millimetres, e.g. "2352x2393x5898".
func parseContainer(s string) (model.Container, error) {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == 'x' || r == '*' || r == ','
	})
	if len(fields) != 3 {
		return model.Container{}, fmt.Errorf("container %q: want WIDTHxHEIGHTxDEPTH", s)
	}
	var dims [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return model.Container{}, fmt.Errorf("container %q: %w", s, err)
		}
		if v <= 0 {
			return model.Container{}, fmt.Errorf("container %q: dimensions must be positive", s)
		}
		dims[i] = v
	}
	label := fmt.Sprintf("%gx%gx%g", dims[0], dims[1], dims[2])
	return model.NewContainer(label, dims[0], dims[1], dims[2]), nil
}

// settingsFlags are the planner overrides shared by plan and compare.
type settingsFlags struct {
	container string
	preset    string
	spacing   float64
	support   float64
	tolerance float64
	sort      string
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	defaults := model.DefaultSettings()
	cmd.Flags().StringVar(&f.container, "container", "", "container interior as WIDTHxHEIGHTxDEPTH in mm")
	cmd.Flags().StringVar(&f.preset, "preset", "", "container preset name (see 'loadcut presets')")
	cmd.Flags().Float64Var(&f.spacing, "spacing", defaults.Spacing, "gap kept between boxes and to the walls, mm")
	cmd.Flags().Float64Var(&f.support, "support", defaults.SupportThreshold, "fraction of a box base that must rest on boxes below")
	cmd.Flags().Float64Var(&f.tolerance, "tolerance", defaults.SimilarityTolerance, "skip orientations within this ratio of one already tried")
	cmd.Flags().StringVar(&f.sort, "sort", string(defaults.SortKey), "box order: max_area or volume")
}

// resolve picks the container and settings for a run. Precedence is:
// flags, then the input file, then the application config.
func (f *settingsFlags) resolve(cmd *cobra.Command, in loadedInput, cfg model.AppConfig) (model.Container, model.PackSettings, error) {
	var container model.Container
	switch {
	case f.container != "":
		c, err := parseContainer(f.container)
		if err != nil {
			return model.Container{}, model.PackSettings{}, err
		}
		container = c
	case f.preset != "":
		p, ok := model.GetContainerPreset(f.preset)
		if !ok {
			return model.Container{}, model.PackSettings{}, fmt.Errorf("unknown preset %q", f.preset)
		}
		container = p.ToContainer()
	case in.HasContainer:
		container = in.Project.Container
	default:
		p, ok := model.GetContainerPreset(cfg.DefaultContainerPreset)
		if !ok {
			p = model.ContainerPresets[0]
		}
		container = p.ToContainer()
	}

	settings := model.DefaultSettings()
	if in.HasSettings {
		settings = in.Project.Settings
	} else {
		cfg.ApplyToSettings(&settings)
	}

	flags := cmd.Flags()
	if flags.Changed("spacing") {
		settings.Spacing = f.spacing
	}
	if flags.Changed("support") {
		settings.SupportThreshold = f.support
	}
	if flags.Changed("tolerance") {
		settings.SimilarityTolerance = f.tolerance
	}
	if flags.Changed("sort") {
		settings.SortKey = model.SortKey(strings.ToLower(f.sort))
	}
	if err := settings.Validate(); err != nil {
		return model.Container{}, model.PackSettings{}, err
	}
	return container, settings, nil
}
