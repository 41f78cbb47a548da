package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GradienceTeam/gradience-shell/internal/prefs"
)

func newResetCmd(a *app) *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default GNOME Shell theme",
		Long: `Restore the default GNOME Shell theme by clearing the User Themes
extension setting. With --purge the generated gradience-shell theme is also
deleted from ~/.local/share/themes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.newAnyVersionGenerator(cmd.Context())
			if err != nil {
				return err
			}

			group, err := prefs.NewResetGroup(a, a.logger)
			if err != nil {
				return err
			}
			group.OnReset("shell-theme", g.ResetShellTheme)
			if purge {
				group.OnReset("theme-files", func(_ context.Context) error {
					return g.RemoveTheme()
				})
			}

			a.logger.Debug("resetting presets", "app", group.Application(), "actions", group.Actions())
			if err := group.Reset(cmd.Context()); err != nil {
				return err
			}

			if !a.quiet {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "✓ Restored the default shell theme")
				if purge {
					fmt.Fprintf(out, "✓ Removed %s\n", g.Paths().ThemeRoot())
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&purge, "purge", false, "also delete the generated theme files")

	return cmd
}
