package shell

import (
	"bytes"
	"os"
)

// AccentVariable is the preset variable toggle switches are recoloured with.
const AccentVariable = "accent_bg_color"

// defaultAccentFill is the Adwaita blue fill baked into the stock toggle-on asset.
const defaultAccentFill = "fill:#3584e4"

// RecolorSVG replaces the stock accent fill in svg with accent.
func RecolorSVG(svg []byte, accent string) []byte {
	return bytes.ReplaceAll(svg, []byte(defaultAccentFill), []byte("fill:"+accent))
}

// RecolorAssets refreshes the switches partial and writes the recoloured
// toggle assets into the theme. The installed toggle-on source is only read,
// so every run starts from the stock asset.
func (g *Generator) RecolorAssets() error {
	accent, ok := g.variables[AccentVariable]
	if !ok {
		err := &MissingVariableError{Key: AccentVariable, Source: g.paths.SwitchOnSource}
		g.logger.Error("unable to recolor assets", "error", err)
		return err
	}

	f, source, err := g.loader.Open(switchesTemplateName)
	if err != nil {
		g.logger.Error("unable to open switches template", "error", err)
		return err
	}
	defer f.Close()

	if err := copyReader(g.paths.SwitchesSource, f); err != nil {
		g.logger.Error("unable to install switches source", "template", source, "error", err)
		return err
	}

	svg, err := os.ReadFile(g.paths.SwitchOnSource)
	if err != nil {
		g.logger.Error("unable to read toggle-on asset", "error", err)
		return err
	}

	if err := ensureDir(g.paths.AssetsOutput); err != nil {
		g.logger.Error("unable to create directories", "error", err)
		return err
	}

	if err := writeFileAtomic(g.paths.SwitchOnOutput, RecolorSVG(svg, accent), 0o644); err != nil {
		g.logger.Error("unable to write toggle-on asset", "error", err)
		return err
	}

	if err := copyFile(g.paths.SwitchOffSource, g.paths.SwitchOffOutput); err != nil {
		g.logger.Error("unable to copy toggle-off asset", "error", err)
		return err
	}

	g.logger.Debug("recolored assets", "accent", accent, "output", g.paths.AssetsOutput)
	return nil
}
