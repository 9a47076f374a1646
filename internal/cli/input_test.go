package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/LoadCut/internal/model"
)

func TestParseContainer(t *testing.T) {
	tests := []struct {
		in      string
		want    [3]float64
		wantErr bool
	}{
		{"2352x2393x5898", [3]float64{2352, 2393, 5898}, false},
		{"10*20*30", [3]float64{10, 20, 30}, false},
		{"10X20X30.5", [3]float64{10, 20, 30.5}, false},
		{" 10 x 20 x 30 ", [3]float64{10, 20, 30}, false},
		{"1x2", [3]float64{}, true},
		{"0x1x1", [3]float64{}, true},
		{"ax1x1", [3]float64{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := parseContainer(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", c)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := [3]float64{c.Width, c.Height, c.Depth}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseContainer_Label(t *testing.T) {
	c, err := parseContainer("2352x2393x5898")
	if err != nil {
		t.Fatal(err)
	}
	if c.Label != "2352x2393x5898" {
		t.Errorf("unexpected label %q", c.Label)
	}
}

// flagCmd returns a command with the settings flags registered and the
// given flags set.
func flagCmd(t *testing.T, set map[string]string) (*cobra.Command, *settingsFlags) {
	t.Helper()
	f := &settingsFlags{}
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	for k, v := range set {
		if err := cmd.Flags().Set(k, v); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}
	return cmd, f
}

func TestResolve_ConfigDefaults(t *testing.T) {
	cmd, f := flagCmd(t, nil)
	cfg := model.DefaultAppConfig()
	cfg.DefaultContainerPreset = "eur pallet load"
	cfg.DefaultSpacing = 7

	container, settings, err := f.resolve(cmd, loadedInput{Project: model.NewProject()}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if container.Label != "EUR pallet load" {
		t.Errorf("expected config preset, got %s", container.Label)
	}
	if settings.Spacing != 7 {
		t.Errorf("expected config spacing, got %g", settings.Spacing)
	}
}

func TestResolve_UnknownConfigPresetFallsBack(t *testing.T) {
	cmd, f := flagCmd(t, nil)
	cfg := model.DefaultAppConfig()
	cfg.DefaultContainerPreset = "Shoebox"

	container, _, err := f.resolve(cmd, loadedInput{Project: model.NewProject()}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if container.Label != model.ContainerPresets[0].Name {
		t.Errorf("expected first preset, got %s", container.Label)
	}
}

func TestResolve_InputBeatsConfig(t *testing.T) {
	cmd, f := flagCmd(t, nil)
	p := model.NewProject()
	p.Container = model.NewContainer("Trailer", 2480, 2700, 13600)
	p.Settings.Spacing = 3

	container, settings, err := f.resolve(cmd, loadedInput{Project: p, HasContainer: true, HasSettings: true}, model.DefaultAppConfig())
	if err != nil {
		t.Fatal(err)
	}
	if container.Label != "Trailer" || settings.Spacing != 3 {
		t.Errorf("expected input container and settings, got %s spacing %g", container.Label, settings.Spacing)
	}
}

func TestResolve_FlagsBeatInput(t *testing.T) {
	cmd, f := flagCmd(t, map[string]string{
		"container": "1000x1000x2000",
		"spacing":   "12",
		"sort":      "VOLUME",
	})
	p := model.NewProject()
	p.Container = model.NewContainer("Trailer", 2480, 2700, 13600)
	p.Settings.Spacing = 3

	container, settings, err := f.resolve(cmd, loadedInput{Project: p, HasContainer: true, HasSettings: true}, model.DefaultAppConfig())
	if err != nil {
		t.Fatal(err)
	}
	if container.Depth != 2000 {
		t.Errorf("expected flag container, got %+v", container)
	}
	if settings.Spacing != 12 || settings.SortKey != model.SortVolume {
		t.Errorf("expected flag settings, got %+v", settings)
	}
	if settings.SupportThreshold != p.Settings.SupportThreshold {
		t.Errorf("unchanged flags must not override input, got %+v", settings)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]string
		want string
	}{
		{"unknown preset", map[string]string{"preset": "Shoebox"}, "unknown preset"},
		{"bad container", map[string]string{"container": "1x1"}, "WIDTHxHEIGHTxDEPTH"},
		{"bad sort", map[string]string{"sort": "weight"}, "sort"},
		{"bad support", map[string]string{"support": "2"}, "support"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, f := flagCmd(t, tt.set)
			_, _, err := f.resolve(cmd, loadedInput{Project: model.NewProject()}, model.DefaultAppConfig())
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadInput(t *testing.T) {
	dir := t.TempDir()
	logger := log.New(os.Stderr)

	csvPath := filepath.Join(dir, "week12.csv")
	if err := os.WriteFile(csvPath, []byte("label,width,height,depth,quantity\nCrate,600,400,800,2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	in, err := loadInput(csvPath, logger)
	if err != nil {
		t.Fatal(err)
	}
	if in.Project.Name != "week12" || in.HasContainer || in.HasSettings {
		t.Errorf("unexpected CSV input: %+v", in)
	}
	if len(in.Project.Items) != 1 || in.Project.Items[0].Quantity != 2 {
		t.Errorf("unexpected items: %+v", in.Project.Items)
	}

	tomlPath := filepath.Join(dir, "plan.toml")
	doc := "preset = \"ISO 20ft\"\n[[item]]\nwidth = 10\nheight = 10\ndepth = 10\n"
	if err := os.WriteFile(tomlPath, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	in, err = loadInput(tomlPath, logger)
	if err != nil {
		t.Fatal(err)
	}
	if !in.HasContainer || !in.HasSettings || in.Project.Container.Label != "ISO 20ft" {
		t.Errorf("unexpected TOML input: %+v", in)
	}

	if _, err := loadInput(filepath.Join(dir, "plan.yaml"), logger); err == nil {
		t.Error("expected error for unsupported extension")
	}

	empty := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(empty, []byte("label,width,height,depth\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadInput(empty, logger); err == nil {
		t.Error("expected error for manifest without boxes")
	}
}
