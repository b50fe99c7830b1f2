package renderer

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	testCases := []struct {
		name    string
		tmpl    string
		mapping map[string]string
		want    string
	}{
		{
			name:    "substitution",
			tmpl:    "# {{TITLE}} • {{DAY}}",
			mapping: map[string]string{"TITLE": "HUD", "DAY": "segunda-feira"},
			want:    "# HUD • segunda-feira",
		},
		{
			name:    "missing key",
			tmpl:    "Pace: {{RUN_PACE}} min/km",
			mapping: map[string]string{},
			want:    "Pace: — min/km",
		},
		{
			name:    "values are not re-scanned",
			tmpl:    "{{A}} {{B}}",
			mapping: map[string]string{"A": "{{B}}", "B": "b"},
			want:    "{{B}} b",
		},
		{
			name:    "unknown keys inside values are kept",
			tmpl:    "{{TITLE}}",
			mapping: map[string]string{"TITLE": "Fed {{RATE}} decision"},
			want:    "Fed {{RATE}} decision",
		},
		{
			name:    "repeated key",
			tmpl:    "{{X}}/{{X}}",
			mapping: map[string]string{"X": "1"},
			want:    "1/1",
		},
		{
			name:    "lowercase braces are kept",
			tmpl:    "{{x}} {{Y}}",
			mapping: nil,
			want:    "{{x}} —",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(tc.tmpl, tc.mapping); got != tc.want {
				t.Errorf("Render() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRender_DefaultTemplate(t *testing.T) {
	got := Render(Template, map[string]string{"PLAYER": "Ana", "SPX_D1": "+1.20"})
	if regexp.MustCompile(`\{\{[A-Z0-9_]+\}\}`).MatchString(got) {
		t.Errorf("rendered template still contains placeholders:\n%s", got)
	}
	if !strings.Contains(got, "**Player:** Ana") {
		t.Errorf("rendered template misses the player name:\n%s", got)
	}
	if !strings.Contains(got, "| **S&P 500 (SPX)** | +1.20 |") {
		t.Errorf("rendered template misses the SPX return:\n%s", got)
	}
}

func TestPlaceholders(t *testing.T) {
	keys := Placeholders(Template)
	want := []string{"DATA_EXTENSO", "PLAYER", "INSIGHTS_TABLE_MD", "NEWS6_URL", "GOLD_NIVEL", "ALERTAS_MERCADO_TXT", "LINK_SWM"}
	set := map[string]bool{}
	for _, k := range keys {
		if set[k] {
			t.Errorf("Placeholders() returned %q twice", k)
		}
		set[k] = true
	}
	for _, k := range want {
		if !set[k] {
			t.Errorf("Placeholders() misses %q", k)
		}
	}
}

func TestLoad(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if got != Template {
		t.Errorf("Load(\"\") did not return the embedded template")
	}

	path := filepath.Join(t.TempDir(), "custom.md")
	if err := os.WriteFile(path, []byte("hi {{PLAYER}}"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}
	if got != "hi {{PLAYER}}" {
		t.Errorf("Load(%q) = %q", path, got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "absent.md")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestHTML(t *testing.T) {
	got, err := HTML("# HUD\n\n| A | B |\n|---|---:|\n| x | 1 |\n")
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}
	for _, want := range []string{"<h1>HUD</h1>", "<table>", "<td>x</td>", ">1</td>"} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML() = %q, want it to contain %q", got, want)
		}
	}
}
