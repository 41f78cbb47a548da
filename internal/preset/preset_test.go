package preset

import (
	"os"
	"path/filepath"
	"testing"
)

const adwaitaDark = `{
  "name": "Adwaita Dark",
  "variables": {
    "accent_color": "#78aeed",
    "accent_bg_color": "#3584e4",
    "window_bg_color": "#242424"
  },
  "palette": {
    "blue_": {"1": "#99c1f1", "2": "#62a0ea"}
  },
  "custom_css": {"gtk4": "", "gtk3": ""}
}`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "adwaita-dark.json")
	if err := os.WriteFile(path, []byte(adwaitaDark), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Name != "Adwaita Dark" {
		t.Errorf("Name = %q", p.Name)
	}
	if got := p.ThemeVariables()["accent_bg_color"]; got != "#3584e4" {
		t.Errorf("accent_bg_color = %q", got)
	}
	if got := p.Palette["blue_"]["2"]; got != "#62a0ea" {
		t.Errorf("palette blue_ 2 = %q", got)
	}
}

func TestLoadNamesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sunset.json")
	if err := os.WriteFile(path, []byte(`{"variables": {}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Name != "sunset" {
		t.Errorf("Name = %q, want sunset", p.Name)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestParseWithoutVariables(t *testing.T) {
	p, err := Parse([]byte(`{"name": "empty"}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.Variables == nil {
		t.Error("Variables should be an empty map, not nil")
	}
}

func TestWithOverrides(t *testing.T) {
	base := New("base", map[string]string{"accent_bg_color": "#3584e4", "window_bg_color": "#242424"})

	out := base.WithOverrides(map[string]string{"accent_bg_color": "#ff0000", "headerbar_bg_color": "#303030"})

	if out.Variables["accent_bg_color"] != "#ff0000" {
		t.Errorf("override not applied: %v", out.Variables)
	}
	if out.Variables["headerbar_bg_color"] != "#303030" {
		t.Errorf("new variable not added: %v", out.Variables)
	}
	if out.Variables["window_bg_color"] != "#242424" {
		t.Errorf("base variable lost: %v", out.Variables)
	}
	if base.Variables["accent_bg_color"] != "#3584e4" {
		t.Error("WithOverrides modified the original preset")
	}
	if out.Name != "base" {
		t.Errorf("Name = %q", out.Name)
	}
}

func TestParseOverrides(t *testing.T) {
	got, err := ParseOverrides([]string{"accent_bg_color=#ff0000", " window_bg_color = rgba(0, 0, 0, 0.5) ", "accent_bg_color=#00ff00"})
	if err != nil {
		t.Fatalf("ParseOverrides() error = %v", err)
	}
	if got["accent_bg_color"] != "#00ff00" {
		t.Errorf("later pair should win, got %q", got["accent_bg_color"])
	}
	if got["window_bg_color"] != "rgba(0, 0, 0, 0.5)" {
		t.Errorf("window_bg_color = %q", got["window_bg_color"])
	}

	for _, bad := range []string{"novalue", "=#fff", ""} {
		if _, err := ParseOverrides([]string{bad}); err == nil {
			t.Errorf("ParseOverrides(%q) should fail", bad)
		}
	}
}
