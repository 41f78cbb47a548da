// Package template loads shell theme templates with per-user override support.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Extension is the suffix shared by every shell theme template.
const Extension = ".template"

// Loader handles loading templates with support for custom overrides.
// It checks for a custom template in {customBase}/{version}/ first and
// falls back to the installed templates in fsys.
type Loader struct {
	version    string
	fsys       fs.FS
	customBase string // Base directory for custom templates
	logger     Logger // Optional logger for override diagnostics
}

// Logger is the subset of hclog.Logger the loader needs.
type Logger interface {
	Debug(msg string, args ...any)
}

// New creates a loader for the installed templates of one shell version.
// fsys is rooted at the versioned templates directory.
func New(version string, fsys fs.FS) *Loader {
	customBase := ""
	if home, err := os.UserHomeDir(); err == nil {
		customBase = filepath.Join(home, ".config", "gradience", "shell", "templates")
	}

	return &Loader{
		version:    version,
		fsys:       fsys,
		customBase: customBase,
	}
}

// NewFromDir is New with fsys set to os.DirFS(dir).
func NewFromDir(version, dir string) *Loader {
	return New(version, os.DirFS(dir))
}

// WithCustomBase sets the base directory searched for overrides.
// An empty base disables overrides.
func (l *Loader) WithCustomBase(customBase string) *Loader {
	l.customBase = customBase
	return l
}

// WithLogger sets the logger used to report which template was chosen.
func (l *Loader) WithLogger(logger Logger) *Loader {
	l.logger = logger
	return l
}

// Load reads a template, preferring a custom override.
// Returns the content and whether it came from the override directory.
func (l *Loader) Load(filename string) (content []byte, fromCustom bool, err error) {
	if l.customBase != "" {
		customPath := l.CustomPath(filename)
		if content, err := os.ReadFile(customPath); err == nil { // #nosec G304 - user override directory
			l.debug("using custom template", "path", customPath)
			return content, true, nil
		}
	}

	l.debug("using installed template", "name", filename)

	content, err = fs.ReadFile(l.fsys, filename)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", filename, err)
	}

	return content, false, nil
}

// Open returns a reader for a template, preferring a custom override.
// The returned path is the override path or the installed name.
func (l *Loader) Open(filename string) (fs.File, string, error) {
	if l.customBase != "" {
		customPath := l.CustomPath(filename)
		if f, err := os.Open(customPath); err == nil { // #nosec G304 - user override directory
			l.debug("using custom template", "path", customPath)
			return f, customPath, nil
		}
	}

	f, err := l.fsys.Open(filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open template %q: %w", filename, err)
	}
	l.debug("using installed template", "name", filename)
	return f, filename, nil
}

// CustomPath returns the path where a custom template would be located.
func (l *Loader) CustomPath(filename string) string {
	return filepath.Join(l.customBase, l.version, filename)
}

// CustomDir returns the override directory for this shell version.
func (l *Loader) CustomDir() string {
	return filepath.Join(l.customBase, l.version)
}

// HasCustomTemplate checks if a custom template exists for the given filename.
func (l *Loader) HasCustomTemplate(filename string) bool {
	if l.customBase == "" {
		return false
	}
	_, err := os.Stat(l.CustomPath(filename))
	return err == nil
}

// List returns the installed template names, sorted.
func (l *Loader) List() ([]string, error) {
	var templates []string

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == Extension {
			templates = append(templates, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	sort.Strings(templates)
	return templates, nil
}

// ErrCustomExists is returned by Dump when an override is already present.
var ErrCustomExists = errors.New("custom template already exists")

// Dump copies an installed template into the override directory.
// If force is false, an existing override is left alone.
func (l *Loader) Dump(filename string, force bool) error {
	if l.customBase == "" {
		return fmt.Errorf("no custom template directory configured")
	}

	content, err := fs.ReadFile(l.fsys, filename)
	if err != nil {
		return fmt.Errorf("failed to read template %q: %w", filename, err)
	}

	outputPath := l.CustomPath(filename)

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrCustomExists, outputPath)
		}
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", outputDir, err)
	}

	if err := os.WriteFile(outputPath, content, 0o644); err != nil { // #nosec G306 - template is not secret
		return fmt.Errorf("failed to write template to %q: %w", outputPath, err)
	}

	return nil
}

// DumpAll writes every installed template to the override directory.
// Existing overrides are skipped (unless force) and reported together in the
// returned error; other failures stop immediately.
func (l *Loader) DumpAll(force bool) ([]string, error) {
	templates, err := l.List()
	if err != nil {
		return nil, err
	}

	var dumped []string
	var skipped []string

	for _, tmpl := range templates {
		if err := l.Dump(tmpl, force); err != nil {
			if errors.Is(err, ErrCustomExists) {
				skipped = append(skipped, err.Error())
				continue
			}
			return dumped, err
		}
		dumped = append(dumped, l.CustomPath(tmpl))
	}

	if len(skipped) > 0 {
		return dumped, fmt.Errorf("%s", strings.Join(skipped, "; "))
	}

	return dumped, nil
}

func (l *Loader) debug(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}
