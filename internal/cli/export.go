package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/GradienceTeam/gradience-shell/internal/archive"
	"github.com/GradienceTeam/gradience-shell/internal/shell"
)

const defaultExportName = shell.ThemeName + ".tar.xz"

func newExportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Package the generated theme as a .tar.xz archive",
		Long: `Package the installed gradience-shell theme as an xz-compressed tarball.
The archive contains a single top-level gradience-shell directory and can be
installed elsewhere with "gradience-shell import".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.newAnyVersionGenerator(cmd.Context())
			if err != nil {
				return err
			}

			root := g.Paths().ThemeRoot()
			if _, err := os.Stat(root); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("no generated theme at %s; run apply first", root)
				}
				return err
			}

			a.logger.Debug("exporting theme", "source", root, "output", output)
			if err := archive.ExportFile(root, shell.ThemeName, output); err != nil {
				return err
			}

			if !a.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %s to %s\n", shell.ThemeName, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", defaultExportName, "archive to write")

	return cmd
}
