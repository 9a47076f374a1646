package cli

import (
	"testing"

	"github.com/piwi3910/LoadCut/internal/engine"
)

func TestBestScenario(t *testing.T) {
	results := []engine.ComparisonResult{
		{Utilization: 80, ExtentVolume: 100},
		{Utilization: 90, ExtentVolume: 300},
		{Utilization: 90, ExtentVolume: 200},
		{Utilization: 90, ExtentVolume: 200},
	}
	if got := bestScenario(results); got != 2 {
		t.Errorf("bestScenario() = %d, want 2", got)
	}
	if got := bestScenario(nil); got != -1 {
		t.Errorf("bestScenario(nil) = %d, want -1", got)
	}
}

func TestNormalizeFormats(t *testing.T) {
	got, err := normalizeFormats([]string{"PDF", " png", "pdf", ""})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "pdf" || got[1] != "png" {
		t.Errorf("normalizeFormats() = %v", got)
	}
	if _, err := normalizeFormats([]string{"svg"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := map[string]string{
		"Weekly run": "Weekly_run",
		"a/b:c":      "a_b_c",
		"   ":        "plan",
		"Tuesday-02": "Tuesday-02",
	}
	for in, want := range tests {
		if got := sanitizeFileName(in); got != want {
			t.Errorf("sanitizeFileName(%q) = %q, want %q", in, got, want)
		}
	}
}
