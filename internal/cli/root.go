// Package cli provides the command-line interface for gradience-shell.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/GradienceTeam/gradience-shell/internal/config"
	"github.com/GradienceTeam/gradience-shell/internal/executor"
	"github.com/GradienceTeam/gradience-shell/internal/settings"
	"github.com/GradienceTeam/gradience-shell/internal/shell"
	"github.com/GradienceTeam/gradience-shell/internal/version"
)

// appName is reported to preferences groups and used as the root logger name.
const appName = "gradience-shell"

// app holds state shared by all commands for one invocation.
type app struct {
	// Global flags.
	configPath string
	dataDir    string
	verbose    bool
	quiet      bool

	cfg            config.Config
	cfgFile        string
	configOptional bool
	logger         hclog.Logger

	// Seams for tests; nil means the real implementation.
	runner   executor.ProcessRunner
	settings settings.Store
	probe    shell.SessionProbe
	probeSet bool
	homeDir  string
	logOut   io.Writer
}

// ApplicationName implements prefs.Parent.
func (a *app) ApplicationName() string { return appName }

// NewRootCmd builds the gradience-shell command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Apply Gradience presets to GNOME Shell",
		Long: `gradience-shell renders a Gradience preset into a GNOME Shell theme and
activates it through the User Themes extension.

The preset's colour variables are substituted into the versioned SCSS
templates, compiled with sassc, and installed to
~/.local/share/themes/gradience-shell.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/gradience/shell.toml)")
	rootCmd.PersistentFlags().StringVar(&a.dataDir, "datadir", "", "install data directory containing gradience/shell")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newApplyCmd(a))
	rootCmd.AddCommand(newDetectCmd(a))
	rootCmd.AddCommand(newResetCmd(a))
	rootCmd.AddCommand(newExportCmd(a))
	rootCmd.AddCommand(newImportCmd(a))
	rootCmd.AddCommand(newTemplatesCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// Execute runs the root command and reports any error on stderr.
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setup loads configuration and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.verbose && a.quiet {
		return errors.New("--verbose and --quiet are mutually exclusive")
	}

	if a.logOut == nil {
		a.logOut = cmd.ErrOrStderr()
	}
	a.logger = newLogger(a.logOut, a.verbose, a.quiet)

	path := a.configPath
	required := path != "" && !a.configOptional
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return err
	}
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	a.cfg = cfg
	a.cfgFile = path

	a.logger.Debug("configuration loaded", "path", path, "datadir", cfg.DataDir, "sassc", cfg.Sassc)
	return nil
}

// generatorOptions translates configuration into shell.Generator options.
func (a *app) generatorOptions() []shell.Option {
	compiler := a.cfg.Sassc
	if a.runner == nil {
		compiler = shell.ResolveCompiler(compiler)
	}

	opts := []shell.Option{
		shell.WithLogger(a.logger),
		shell.WithDataDir(a.cfg.DataDir),
		shell.WithCompiler(compiler),
		shell.WithCompileTimeout(a.cfg.CompileTimeout.Duration),
		shell.WithTemplateOverrides(a.cfg.TemplatesDir),
	}
	if a.runner != nil {
		opts = append(opts, shell.WithRunner(a.runner))
	}
	if a.settings != nil {
		opts = append(opts, shell.WithSettings(a.settings))
	}
	if a.probeSet {
		opts = append(opts, shell.WithSessionProbe(a.probe))
	}
	if a.homeDir != "" {
		opts = append(opts, shell.WithHomeDir(a.homeDir))
	}
	return opts
}

// newGenerator builds a generator for the version given on the command line,
// in the config file, or detected from the running shell, in that order.
func (a *app) newGenerator(ctx context.Context, v shellVersionValue, extra ...shell.Option) (*shell.Generator, error) {
	opts := a.generatorOptions()
	switch {
	case v.set:
		opts = append(opts, shell.WithVersion(v.version))
	case a.cfg.ShellVersion != 0:
		opts = append(opts, shell.WithVersion(a.cfg.ShellVersion))
	}
	opts = append(opts, extra...)
	return shell.New(ctx, opts...)
}

// newAnyVersionGenerator is newGenerator for commands that only touch the
// installed theme, whose location does not depend on the shell version. When
// no version is configured and detection fails it falls back to the newest
// supported version.
func (a *app) newAnyVersionGenerator(ctx context.Context, extra ...shell.Option) (*shell.Generator, error) {
	g, err := a.newGenerator(ctx, shellVersionValue{}, extra...)
	if err == nil || a.cfg.ShellVersion != 0 {
		return g, err
	}

	latest := shell.SupportedVersions[len(shell.SupportedVersions)-1]
	a.logger.Debug("shell version unavailable, using latest supported", "version", latest, "error", err)
	return a.newGenerator(ctx, shellVersionValue{version: latest, set: true}, extra...)
}

// newVersionCmd prints detailed version information.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
