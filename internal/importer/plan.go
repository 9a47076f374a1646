package importer

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/piwi3910/LoadCut/internal/model"
)

// PlanFile is a complete load described in TOML:
//
//	name   = "Week 12"
//	preset = "ISO 20ft"        # or a [container] table
//
//	[settings]
//	spacing = 10
//	sort    = "volume"
//
//	[[item]]
//	label    = "Crate"
//	width    = 600
//	height   = 400
//	depth    = 800
//	quantity = 4
type PlanFile struct {
	Name      string         `toml:"name"`
	Preset    string         `toml:"preset"`
	Container *planContainer `toml:"container"`
	Settings  planSettings   `toml:"settings"`
	Items     []planItem     `toml:"item"`
}

type planContainer struct {
	Label  string  `toml:"label"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Depth  float64 `toml:"depth"`
}

type planSettings struct {
	Spacing             float64 `toml:"spacing"`
	SupportThreshold    float64 `toml:"support_threshold"`
	SimilarityTolerance float64 `toml:"similarity_tolerance"`
	Sort                string  `toml:"sort"`
}

type planItem struct {
	Label    string  `toml:"label"`
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Depth    float64 `toml:"depth"`
	Quantity int     `toml:"quantity"`
}

// PlanImport is the result of reading a plan file. Project is only usable
// when Errors is empty.
type PlanImport struct {
	Project  model.Project
	Errors   []string
	Warnings []string
}

// ImportPlan reads a TOML plan file from disk.
func ImportPlan(path string) PlanImport {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlanImport{Errors: []string{fmt.Sprintf("Cannot open file: %v", err)}}
	}
	return ParsePlan(string(data))
}

// ParsePlan decodes a TOML plan document. Settings missing from the document
// keep their defaults; quantity defaults to 1.
func ParsePlan(doc string) PlanImport {
	var res PlanImport

	defaults := model.DefaultSettings()
	pf := PlanFile{
		Name: "Untitled",
		Settings: planSettings{
			Spacing:             defaults.Spacing,
			SupportThreshold:    defaults.SupportThreshold,
			SimilarityTolerance: defaults.SimilarityTolerance,
			Sort:                string(defaults.SortKey),
		},
	}
	md, err := toml.Decode(doc, &pf)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("Cannot parse plan: %v", err))
		return res
	}
	for _, key := range md.Undecoded() {
		res.Warnings = append(res.Warnings, fmt.Sprintf("Unknown key %q ignored", key.String()))
	}

	project := model.Project{
		Name: pf.Name,
		Settings: model.PackSettings{
			Spacing:             pf.Settings.Spacing,
			SupportThreshold:    pf.Settings.SupportThreshold,
			SimilarityTolerance: pf.Settings.SimilarityTolerance,
			SortKey:             model.SortKey(strings.ToLower(pf.Settings.Sort)),
		},
		Items: []model.Item{},
	}
	if err := project.Settings.Validate(); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("Invalid settings: %v", err))
	}

	switch {
	case pf.Container != nil && pf.Preset != "":
		res.Errors = append(res.Errors, "Give either preset or [container], not both")
	case pf.Container != nil:
		c := pf.Container
		if c.Width <= 0 || c.Height <= 0 || c.Depth <= 0 {
			res.Errors = append(res.Errors, "Container width, height and depth must be positive")
		}
		label := c.Label
		if label == "" {
			label = "Container"
		}
		project.Container = model.NewContainer(label, c.Width, c.Height, c.Depth)
	case pf.Preset != "":
		preset, ok := model.GetContainerPreset(pf.Preset)
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("Unknown container preset %q (known: %s)",
				pf.Preset, strings.Join(model.ContainerPresetNames(), ", ")))
		}
		project.Container = preset.ToContainer()
	default:
		res.Errors = append(res.Errors, "Plan has no container: set preset or add a [container] table")
	}

	for i, pi := range pf.Items {
		label := pi.Label
		if label == "" {
			label = fmt.Sprintf("Box %d", i+1)
		}
		qty := pi.Quantity
		if qty == 0 {
			qty = 1
		}
		if pi.Width <= 0 || pi.Height <= 0 || pi.Depth <= 0 || qty < 0 {
			res.Errors = append(res.Errors, fmt.Sprintf("Item %d (%s): Width, height, depth and quantity must be positive", i+1, label))
			continue
		}
		project.Items = append(project.Items, model.NewItem(label, pi.Width, pi.Height, pi.Depth, qty))
	}
	if len(pf.Items) == 0 {
		res.Warnings = append(res.Warnings, "Plan has no items")
	}

	res.Project = project
	return res
}
