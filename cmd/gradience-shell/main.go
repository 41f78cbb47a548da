// gradience-shell applies Gradience colour presets to GNOME Shell.
//
// It renders a preset into the gradience-shell theme under
// ~/.local/share/themes and selects it through the User Themes extension.
//
// Copyright (C) 2023, Gradience Team
// Licensed under the GNU General Public License v3.0 or later
package main

import (
	"os"

	"github.com/GradienceTeam/gradience-shell/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
