// Package shell generates and activates the gradience-shell GNOME Shell theme.
//
// A Generator renders the versioned SCSS colour template with a preset's
// variables, compiles the SCSS tree with sassc, recolours the toggle switch
// assets and points the user-theme extension at the result. A Generator is
// meant to be built per apply request and is not safe for concurrent use.
package shell

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/GradienceTeam/gradience-shell/internal/executor"
	"github.com/GradienceTeam/gradience-shell/internal/settings"
	tmplloader "github.com/GradienceTeam/gradience-shell/internal/template"
)

// Defaults used when the corresponding option is not given.
const (
	DefaultDataDir        = "/usr/share"
	DefaultCompiler       = "/usr/bin/sassc"
	DefaultCompileTimeout = 60 * time.Second
)

// Preset supplies the variable mapping a theme is generated from.
type Preset interface {
	ThemeVariables() map[string]string
}

// Variables is a bare variable mapping usable as a Preset.
type Variables map[string]string

// ThemeVariables implements Preset.
func (v Variables) ThemeVariables() map[string]string { return v }

// Generator builds and activates the shell theme for one GNOME Shell version.
type Generator struct {
	version int
	paths   Paths

	logger         hclog.Logger
	runner         executor.ProcessRunner
	settings       settings.Store
	probe          SessionProbe
	loader         *tmplloader.Loader
	compiler       string
	compileTimeout time.Duration

	variables map[string]string
}

type options struct {
	version        int
	versionSet     bool
	dataDir        string
	homeDir        string
	overridesDir   string
	overridesSet   bool
	logger         hclog.Logger
	runner         executor.ProcessRunner
	settings       settings.Store
	detector       VersionDetector
	probe          SessionProbe
	probeSet       bool
	compiler       string
	compileTimeout time.Duration
}

// Option configures a Generator.
type Option func(*options)

// WithVersion targets an explicit shell version instead of detecting one.
func WithVersion(v int) Option {
	return func(o *options) {
		o.version = v
		o.versionSet = true
	}
}

// WithDataDir sets the install data directory holding gradience/shell.
func WithDataDir(dir string) Option {
	return func(o *options) { o.dataDir = dir }
}

// WithHomeDir sets the home directory the theme is installed under.
func WithHomeDir(dir string) Option {
	return func(o *options) { o.homeDir = dir }
}

// WithTemplateOverrides sets the base directory for user template overrides.
// An empty dir disables overrides.
func WithTemplateOverrides(dir string) Option {
	return func(o *options) {
		o.overridesDir = dir
		o.overridesSet = true
	}
}

// WithLogger sets the logger. The generator logs under the "shell" sub-logger.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRunner sets the process runner used for sassc and the default
// settings store and version detector.
func WithRunner(r executor.ProcessRunner) Option {
	return func(o *options) { o.runner = r }
}

// WithSettings sets the settings store the theme is activated through.
func WithSettings(s settings.Store) Option {
	return func(o *options) { o.settings = s }
}

// WithDetector sets how the shell version is detected when none is given.
func WithDetector(d VersionDetector) Option {
	return func(o *options) { o.detector = d }
}

// WithSessionProbe sets the probe used to warn when no shell is running.
// A nil probe disables the check.
func WithSessionProbe(p SessionProbe) Option {
	return func(o *options) {
		o.probe = p
		o.probeSet = true
	}
}

// WithCompiler sets the sassc executable path.
func WithCompiler(path string) Option {
	return func(o *options) { o.compiler = path }
}

// WithCompileTimeout bounds a single sassc run. Zero means no timeout.
func WithCompileTimeout(d time.Duration) Option {
	return func(o *options) { o.compileTimeout = d }
}

// New resolves the target shell version and computes all theme paths.
// Without WithVersion the version is detected from the running system.
// It fails with ErrUnsupportedVersion for versions outside SupportedVersions.
func New(ctx context.Context, opts ...Option) (*Generator, error) {
	o := options{
		dataDir:        DefaultDataDir,
		compiler:       DefaultCompiler,
		compileTimeout: DefaultCompileTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = hclog.NewNullLogger()
	}
	logger := o.logger.Named("shell")

	if o.runner == nil {
		o.runner = executor.NewRealProcessRunner()
	}
	if o.settings == nil {
		o.settings = settings.NewGSettings("", o.runner)
	}
	if o.detector == nil {
		o.detector = NewCommandDetector(o.runner)
	}
	if !o.probeSet {
		o.probe = NewProcessProbe()
	}
	if o.homeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			logger.Error("unable to determine home directory", "error", err)
			return nil, err
		}
		o.homeDir = home
	}
	if !o.overridesSet {
		o.overridesDir = filepath.Join(o.homeDir, ".config", "gradience", "shell", "templates")
	}

	version, err := resolveVersion(ctx, o, logger)
	if err != nil {
		return nil, err
	}

	paths := NewPaths(o.dataDir, o.homeDir, version)
	loader := tmplloader.NewFromDir(strconv.Itoa(version), paths.TemplatesDir).
		WithCustomBase(o.overridesDir).
		WithLogger(logger)

	logger.Debug("generator ready", "version", version, "templates", paths.TemplatesDir, "output", paths.OutputDir)

	return &Generator{
		version:        version,
		paths:          paths,
		logger:         logger,
		runner:         o.runner,
		settings:       o.settings,
		probe:          o.probe,
		loader:         loader,
		compiler:       o.compiler,
		compileTimeout: o.compileTimeout,
	}, nil
}

func resolveVersion(ctx context.Context, o options, logger hclog.Logger) (int, error) {
	if o.versionSet {
		if err := ValidateVersion(o.version); err != nil {
			logger.Error("requested shell version is not supported", "version", o.version, "supported", SupportedVersions)
			return 0, err
		}
		return o.version, nil
	}

	raw, err := o.detector.DetectVersion(ctx)
	if err != nil {
		logger.Error("unable to detect GNOME Shell version", "error", err)
		return 0, err
	}

	v, err := ParseDetectedVersion(raw)
	if err != nil {
		logger.Error("detected shell version is not supported", "detected", raw, "supported", SupportedVersions)
		return 0, err
	}

	logger.Debug("detected shell version", "raw", raw, "version", v)
	return v, nil
}

// Version returns the shell version the generator targets.
func (g *Generator) Version() int { return g.version }

// Paths returns the resolved template, source and output paths.
func (g *Generator) Paths() Paths { return g.paths }

// Templates returns the template loader for this shell version.
func (g *Generator) Templates() *tmplloader.Loader { return g.loader }

// ApplyTheme generates the theme from preset and activates it. Any failure is
// logged and returned as a *ThemeApplicationError wrapping the cause. Files
// already written by earlier steps are left in place.
func (g *Generator) ApplyTheme(ctx context.Context, preset Preset) error {
	if err := g.createTheme(ctx, preset); err != nil {
		g.logger.Error("failed to apply a theme for GNOME Shell", "error", err)
		return &ThemeApplicationError{Err: err}
	}
	return nil
}

func (g *Generator) createTheme(ctx context.Context, preset Preset) error {
	if preset == nil {
		return errors.New("preset cannot be nil")
	}
	g.variables = preset.ThemeVariables()

	if err := g.InsertVariables(); err != nil {
		return err
	}

	if err := ensureDir(g.paths.OutputDir); err != nil {
		g.logger.Error("unable to create directories", "error", err)
		return err
	}

	if err := g.CompileSass(ctx, g.paths.MainSource, g.paths.CSSOutput); err != nil {
		return err
	}

	if err := g.RecolorAssets(); err != nil {
		return err
	}

	if err := g.SetShellTheme(ctx); err != nil {
		return err
	}

	g.warnIfShellMissing()
	g.logger.Info("applied GNOME Shell theme", "theme", ThemeName, "version", g.version)
	return nil
}

func (g *Generator) warnIfShellMissing() {
	if g.probe == nil {
		return
	}
	running, err := g.probe.ShellRunning()
	if err != nil {
		g.logger.Debug("unable to inspect process list", "error", err)
		return
	}
	if !running {
		g.logger.Warn("gnome-shell is not running; the theme takes effect at next login")
	}
}
