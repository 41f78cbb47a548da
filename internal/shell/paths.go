package shell

import (
	"path/filepath"
	"strconv"
)

// ThemeName is the directory name and user-theme identifier of the generated theme.
const ThemeName = "gradience-shell"

// Paths holds every template, source and output location for one shell version.
type Paths struct {
	TemplatesDir string
	SourceDir    string
	OutputDir    string
	AssetsOutput string

	MainTemplate     string
	ColorsTemplate   string
	SwitchesTemplate string

	MainSource     string
	ColorsSource   string
	SwitchesSource string

	SwitchOnSource  string
	SwitchOffSource string

	CSSOutput       string
	SwitchOnOutput  string
	SwitchOffOutput string
}

// Template file names, relative to Paths.TemplatesDir.
const (
	mainTemplateName     = "gnome-shell.template"
	colorsTemplateName   = "colors.template"
	switchesTemplateName = "switches.template"
)

// NewPaths derives all paths from the data directory, the user's home
// directory and the shell version.
func NewPaths(dataDir, homeDir string, version int) Paths {
	v := strconv.Itoa(version)

	templatesDir := filepath.Join(dataDir, "gradience", "shell", "templates", v)
	sourceDir := filepath.Join(dataDir, "gradience", "shell", v)
	outputDir := filepath.Join(homeDir, ".local", "share", "themes", ThemeName, "gnome-shell")
	assetsOutput := filepath.Join(outputDir, "assets")

	return Paths{
		TemplatesDir: templatesDir,
		SourceDir:    sourceDir,
		OutputDir:    outputDir,
		AssetsOutput: assetsOutput,

		MainTemplate:     filepath.Join(templatesDir, mainTemplateName),
		ColorsTemplate:   filepath.Join(templatesDir, colorsTemplateName),
		SwitchesTemplate: filepath.Join(templatesDir, switchesTemplateName),

		MainSource:     filepath.Join(sourceDir, "gnome-shell.scss"),
		ColorsSource:   filepath.Join(sourceDir, "gnome-shell-sass", "_colors.scss"),
		SwitchesSource: filepath.Join(sourceDir, "gnome-shell-sass", "widgets", "_switches.scss"),

		SwitchOnSource:  filepath.Join(sourceDir, "toggle-on.svg"),
		SwitchOffSource: filepath.Join(sourceDir, "toggle-off.svg"),

		CSSOutput:       filepath.Join(outputDir, "gnome-shell.css"),
		SwitchOnOutput:  filepath.Join(assetsOutput, "toggle-on.svg"),
		SwitchOffOutput: filepath.Join(assetsOutput, "toggle-off.svg"),
	}
}

// ThemeRoot returns the top-level directory of the installed theme
// (the parent of OutputDir).
func (p Paths) ThemeRoot() string {
	return filepath.Dir(p.OutputDir)
}
