package shell

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRecolorSVG(t *testing.T) {
	tests := []struct {
		name   string
		svg    string
		accent string
		want   string
	}{
		{
			name:   "replaces default fill",
			svg:    `<rect style="fill:#3584e4;stroke:none"/>`,
			accent: "#ff0000",
			want:   `<rect style="fill:#ff0000;stroke:none"/>`,
		},
		{
			name:   "replaces every occurrence",
			svg:    `<a style="fill:#3584e4"/><b style="fill:#3584e4"/>`,
			accent: "#00ff00",
			want:   `<a style="fill:#00ff00"/><b style="fill:#00ff00"/>`,
		},
		{
			name:   "leaves other fills alone",
			svg:    `<a style="fill:#ffffff"/>`,
			accent: "#00ff00",
			want:   `<a style="fill:#ffffff"/>`,
		},
		{
			name:   "already recoloured input has nothing to replace",
			svg:    `<a style="fill:#ff0000"/>`,
			accent: "#00ff00",
			want:   `<a style="fill:#ff0000"/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(RecolorSVG([]byte(tt.svg), tt.accent)); got != tt.want {
				t.Errorf("RecolorSVG() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRecolorAssetsRepeatable(t *testing.T) {
	f := newFixture(t)
	g := f.generator(t, 43)
	p := g.Paths()

	g.variables = testVariables()
	if err := g.RecolorAssets(); err != nil {
		t.Fatalf("first RecolorAssets() error = %v", err)
	}
	first := readFile(t, p.SwitchOnOutput)

	if err := g.RecolorAssets(); err != nil {
		t.Fatalf("second RecolorAssets() error = %v", err)
	}
	if second := readFile(t, p.SwitchOnOutput); second != first {
		t.Errorf("second run changed output:\n%s\n%s", first, second)
	}

	// The installed asset keeps the stock colour, so a new accent still applies.
	if src := readFile(t, p.SwitchOnSource); src != testToggleOn {
		t.Errorf("toggle-on source mutated: %s", src)
	}
	g.variables = Variables{"accent_bg_color": "#00ff00", "window_bg_color": "#000000"}
	if err := g.RecolorAssets(); err != nil {
		t.Fatalf("third RecolorAssets() error = %v", err)
	}
	if got := readFile(t, p.SwitchOnOutput); !strings.Contains(got, "fill:#00ff00") {
		t.Errorf("new accent not applied: %s", got)
	}
}

func TestRecolorAssetsMissingAccent(t *testing.T) {
	f := newFixture(t)
	g := f.generator(t, 42)
	g.variables = Variables{"window_bg_color": "#242424"}

	var missing *MissingVariableError
	if err := g.RecolorAssets(); !errors.As(err, &missing) || missing.Key != AccentVariable {
		t.Fatalf("RecolorAssets() error = %v, want missing %s", err, AccentVariable)
	}
}

func TestApplyThemeTwiceIsStable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		g := f.generator(t, 43)
		if err := g.ApplyTheme(ctx, testVariables()); err != nil {
			t.Fatalf("run %d: ApplyTheme() error = %v", i, err)
		}
		if got := readFile(t, g.Paths().SwitchOnOutput); !strings.Contains(got, "fill:#ff0000") {
			t.Fatalf("run %d: toggle-on = %s", i, got)
		}
	}
}
