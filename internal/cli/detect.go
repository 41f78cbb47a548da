package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GradienceTeam/gradience-shell/internal/settings"
	"github.com/GradienceTeam/gradience-shell/internal/shell"
)

func newDetectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Show the detected GNOME Shell version and theme state",
		Args:  cobra.NoArgs,
		RunE:  a.runDetect,
	}
}

func (a *app) runDetect(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	detector := shell.NewCommandDetector(a.runner)
	raw, detectErr := detector.DetectVersion(ctx)

	table := NewTable([]string{"Property", "Value"})

	switch {
	case detectErr != nil:
		a.logger.Debug("version detection failed", "error", detectErr)
		table.AddRow([]string{"Shell version", "unknown"})
		table.AddRow([]string{"Supported", "no"})
	default:
		table.AddRow([]string{"Shell version", raw})
		if v, err := shell.ParseDetectedVersion(raw); err == nil {
			table.AddRow([]string{"Supported", fmt.Sprintf("yes (templates %d)", v)})
		} else {
			table.AddRow([]string{"Supported", fmt.Sprintf("no (supported: %v)", shell.SupportedVersions)})
		}
	}

	probe := a.probe
	if !a.probeSet {
		probe = shell.NewProcessProbe()
	}
	running := "unknown"
	if probe != nil {
		if ok, err := probe.ShellRunning(); err == nil {
			running = yesNo(ok)
		}
	}
	table.AddRow([]string{"gnome-shell running", running})

	store := a.settings
	if store == nil {
		store = settings.NewGSettings("", a.runner)
	}
	current := "unknown"
	if name, err := store.GetString(ctx, shell.UserThemeSchema, shell.UserThemeKey); err == nil {
		current = name
		if current == "" {
			current = "(default)"
		}
	} else {
		a.logger.Debug("unable to read current theme", "error", err)
	}
	table.AddRow([]string{"Current theme", current})

	fmt.Fprint(cmd.OutOrStdout(), table.Render())
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
