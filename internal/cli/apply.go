package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GradienceTeam/gradience-shell/internal/preset"
	"github.com/GradienceTeam/gradience-shell/internal/settings"
	"github.com/GradienceTeam/gradience-shell/internal/shell"
)

type applyOptions struct {
	presetPath   string
	vars         []string
	shellVersion shellVersionValue
	noActivate   bool
}

func newApplyCmd(a *app) *cobra.Command {
	opts := &applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Generate the shell theme from a preset and activate it",
		Long: `Generate the gradience-shell GNOME Shell theme from a preset and activate it.

Variables come from a Gradience preset file and/or --var overrides. The
accent_bg_color variable is required; every variable referenced by the
colours template must be defined.

Examples:
  # Apply a preset
  gradience-shell apply --preset ~/.config/presets/user/sunset.json

  # Override the accent colour
  gradience-shell apply -p sunset.json --var accent_bg_color=#e01b24

  # Target a specific shell version and install without activating
  gradience-shell apply -p sunset.json --shell-version 42 --no-activate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runApply(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.presetPath, "preset", "p", "", "path to a Gradience preset (JSON)")
	cmd.Flags().StringArrayVar(&opts.vars, "var", nil, "variable override (name=value, repeatable)")
	cmd.Flags().BoolVar(&opts.noActivate, "no-activate", false, "install the theme without selecting it")
	addShellVersionFlag(cmd.Flags(), &opts.shellVersion)

	return cmd
}

func (a *app) runApply(cmd *cobra.Command, opts *applyOptions) error {
	if opts.presetPath == "" && len(opts.vars) == 0 {
		return errors.New("must provide --preset or at least one --var")
	}

	p := preset.New("custom", nil)
	if opts.presetPath != "" {
		loaded, err := preset.Load(opts.presetPath)
		if err != nil {
			return err
		}
		p = loaded
	}

	overrides, err := preset.ParseOverrides(opts.vars)
	if err != nil {
		return err
	}
	if len(overrides) > 0 {
		p = p.WithOverrides(overrides)
	}

	var extra []shell.Option
	if opts.noActivate {
		extra = append(extra, shell.WithSettings(settings.NewMemory()))
	}

	g, err := a.newGenerator(cmd.Context(), opts.shellVersion, extra...)
	if err != nil {
		return err
	}

	a.logger.Debug("applying preset", "preset", p.Name, "variables", len(p.Variables), "version", g.Version())

	if err := g.ApplyTheme(cmd.Context(), p); err != nil {
		return err
	}

	if a.quiet {
		return nil
	}

	out := cmd.OutOrStdout()
	paths := g.Paths()
	fmt.Fprintf(out, "✓ Applied %q to GNOME Shell %d\n", p.Name, g.Version())
	fmt.Fprintf(out, "  ├─ %s\n", paths.CSSOutput)
	fmt.Fprintf(out, "  ├─ %s\n", paths.SwitchOnOutput)
	fmt.Fprintf(out, "  └─ %s\n", paths.SwitchOffOutput)
	if opts.noActivate {
		fmt.Fprintf(out, "Theme installed but not selected; choose %q in the User Themes extension to use it.\n", shell.ThemeName)
	}
	return nil
}
