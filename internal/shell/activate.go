package shell

import (
	"context"
	"fmt"
	"os"
)

// User-theme extension settings the active shell theme is read from.
const (
	UserThemeSchema = "org.gnome.shell.extensions.user-theme"
	UserThemeKey    = "name"
)

// SetShellTheme selects the generated theme. The key is cleared first so the
// shell reloads the theme even when it was already selected.
func (g *Generator) SetShellTheme(ctx context.Context) error {
	if err := g.settings.SetString(ctx, UserThemeSchema, UserThemeKey, ""); err != nil {
		g.logger.Error("unable to reset shell theme", "error", err)
		return err
	}

	if err := g.settings.SetString(ctx, UserThemeSchema, UserThemeKey, ThemeName); err != nil {
		g.logger.Error("unable to set shell theme", "theme", ThemeName, "error", err)
		return err
	}

	return nil
}

// ResetShellTheme switches the shell back to its default theme.
func (g *Generator) ResetShellTheme(ctx context.Context) error {
	if err := g.settings.SetString(ctx, UserThemeSchema, UserThemeKey, ""); err != nil {
		g.logger.Error("unable to reset shell theme", "error", err)
		return err
	}
	g.logger.Info("restored default shell theme")
	return nil
}

// CurrentTheme returns the name of the selected shell theme ("" for default).
func (g *Generator) CurrentTheme(ctx context.Context) (string, error) {
	return g.settings.GetString(ctx, UserThemeSchema, UserThemeKey)
}

// RemoveTheme deletes the installed gradience-shell theme directory.
func (g *Generator) RemoveTheme() error {
	root := g.paths.ThemeRoot()
	if err := os.RemoveAll(root); err != nil {
		g.logger.Error("unable to remove theme", "path", root, "error", err)
		return fmt.Errorf("failed to remove %s: %w", root, err)
	}
	g.logger.Info("removed theme", "path", root)
	return nil
}
