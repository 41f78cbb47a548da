package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/GradienceTeam/gradience-shell/internal/archive"
	"github.com/GradienceTeam/gradience-shell/internal/shell"
)

func newImportCmd(a *app) *cobra.Command {
	var activate bool

	cmd := &cobra.Command{
		Use:   "import <archive>",
		Short: "Install a theme archive created by export",
		Long: `Install a gradience-shell .tar.xz archive into ~/.local/share/themes.
The archive must contain only the gradience-shell theme directory, including
its compiled gnome-shell.css. Archives with other members are rejected before
anything is installed, and an existing gradience-shell theme is replaced.

Examples:
  gradience-shell import gradience-shell.tar.xz --activate`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.newAnyVersionGenerator(cmd.Context())
			if err != nil {
				return err
			}

			themesDir := filepath.Dir(g.Paths().ThemeRoot())
			if err := os.MkdirAll(themesDir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", themesDir, err)
			}

			f, err := os.Open(args[0]) // #nosec G304 - user-provided archive
			if err != nil {
				return fmt.Errorf("failed to open archive: %w", err)
			}
			defer f.Close()

			paths := g.Paths()
			requiredCSS, err := filepath.Rel(paths.ThemeRoot(), paths.CSSOutput)
			if err != nil {
				return err
			}

			files, err := archive.InstallTarXz(f, themesDir, shell.ThemeName, filepath.ToSlash(requiredCSS))
			if err != nil {
				return fmt.Errorf("failed to import %s: %w", args[0], err)
			}
			a.logger.Debug("imported theme", "files", len(files), "dest", paths.ThemeRoot())

			if activate {
				if err := g.SetShellTheme(cmd.Context()); err != nil {
					return err
				}
			}

			if !a.quiet {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "✓ Installed %d files to %s\n", len(files), g.Paths().ThemeRoot())
				if activate {
					fmt.Fprintf(out, "✓ Activated %s\n", shell.ThemeName)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&activate, "activate", false, "select the theme after installing it")

	return cmd
}
