package shell

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/GradienceTeam/gradience-shell/internal/executor"
	"github.com/GradienceTeam/gradience-shell/internal/settings"
)

const (
	testColorsTemplate = "/* Generated by Gradience */\n" +
		"$accent_bg_color: {{accent_bg_color}};\n" +
		"$window_bg_color: {{window_bg_color}};\n" +
		"\n" +
		"$osd_bg_color: transparentize(black, 0.3);\n"
	testSwitchesTemplate = ".toggle-switch {\n  background-image: url('toggle-off.svg');\n}\n"
	testToggleOn         = `<svg><rect style="fill:#3584e4;stroke:none" /></svg>`
	testToggleOff        = `<svg><rect style="fill:#ffffff" /></svg>`
)

// writeInstall lays out the installed data tree for a shell version under dataDir.
func writeInstall(t *testing.T, dataDir string, version int) {
	t.Helper()

	p := NewPaths(dataDir, t.TempDir(), version)
	files := map[string]string{
		p.MainTemplate:     "@import 'gnome-shell-sass/colors';\n",
		p.ColorsTemplate:   testColorsTemplate,
		p.SwitchesTemplate: testSwitchesTemplate,
		p.MainSource:       "@import 'gnome-shell-sass/colors';\n",
		p.SwitchOnSource:   testToggleOn,
		p.SwitchOffSource:  testToggleOff,
	}
	for path, content := range files {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(p.SwitchesSource), 0o755); err != nil {
		t.Fatalf("mkdir widgets: %v", err)
	}
}

// sasscRunner fakes sassc by writing a stub CSS file to the output argument.
func sasscRunner() *executor.MockProcessRunner {
	return &executor.MockProcessRunner{
		RunFunc: func(_ context.Context, _ string, args []string, _ io.Reader) ([]byte, []byte, error) {
			if len(args) != 2 {
				return nil, []byte("usage: sassc INPUT OUTPUT"), os.ErrInvalid
			}
			return nil, nil, os.WriteFile(args[1], []byte("/* compiled */\n"), 0o644)
		},
	}
}

type fakeProbe struct {
	running bool
	err     error
	calls   int
}

func (f *fakeProbe) ShellRunning() (bool, error) {
	f.calls++
	return f.running, f.err
}

type fixture struct {
	dataDir  string
	homeDir  string
	runner   *executor.MockProcessRunner
	settings *settings.Memory
	probe    *fakeProbe
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		dataDir:  t.TempDir(),
		homeDir:  t.TempDir(),
		runner:   sasscRunner(),
		settings: settings.NewMemory(),
		probe:    &fakeProbe{running: true},
	}
	for _, v := range SupportedVersions {
		writeInstall(t, f.dataDir, v)
	}
	return f
}

func (f *fixture) options(extra ...Option) []Option {
	opts := []Option{
		WithDataDir(f.dataDir),
		WithHomeDir(f.homeDir),
		WithTemplateOverrides(""),
		WithRunner(f.runner),
		WithSettings(f.settings),
		WithSessionProbe(f.probe),
	}
	return append(opts, extra...)
}

func (f *fixture) generator(t *testing.T, version int) *Generator {
	t.Helper()

	g, err := New(context.Background(), f.options(WithVersion(version))...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func testVariables() Variables {
	return Variables{
		"accent_bg_color": "#ff0000",
		"window_bg_color": "#242424",
	}
}
