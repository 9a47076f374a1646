package project

import (
	"fmt"
	"os"
	"strings"

	"github.com/piwi3910/LoadCut/internal/model"
)

// Extension is appended to saved project files.
const Extension = ".loadcut.json"

// SaveProject writes a project, including its last load plan, to path.
// The extension is added when missing.
func SaveProject(path string, p model.Project) (string, error) {
	if !strings.HasSuffix(path, Extension) {
		path += Extension
	}
	if err := writeJSON(path, p); err != nil {
		return "", fmt.Errorf("save project: %w", err)
	}
	return path, nil
}

// LoadProject reads a project saved by SaveProject.
func LoadProject(path string) (model.Project, error) {
	var p model.Project
	found, err := readJSON(path, &p)
	if err != nil {
		return model.Project{}, fmt.Errorf("load project: %w", err)
	}
	if !found {
		return model.Project{}, fmt.Errorf("load project: %s: %w", path, os.ErrNotExist)
	}
	if p.Items == nil {
		p.Items = []model.Item{}
	}
	if p.Settings.SortKey == "" {
		p.Settings.SortKey = model.SortMaxArea
	}
	if err := p.Settings.Validate(); err != nil {
		return model.Project{}, fmt.Errorf("load project %s: %w", path, err)
	}
	return p, nil
}
