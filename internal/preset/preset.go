// Package preset loads Gradience preset files.
//
// A preset is treated as an opaque mapping of variable names to CSS colour
// values; values are not validated here.
package preset

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
)

// Preset is a named set of theming variables.
type Preset struct {
	Name      string                       `json:"name"`
	Variables map[string]string            `json:"variables"`
	Palette   map[string]map[string]string `json:"palette,omitempty"`
	CustomCSS map[string]string            `json:"custom_css,omitempty"`
}

// ThemeVariables returns the preset's variable mapping.
func (p *Preset) ThemeVariables() map[string]string {
	return p.Variables
}

// Load reads a JSON preset from path. A preset without a name is named
// after its file.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path) // #nosec G304 - user-selected preset file
	if err != nil {
		return nil, fmt.Errorf("failed to read preset: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}

	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// Parse decodes a JSON preset.
func Parse(data []byte) (*Preset, error) {
	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if p.Variables == nil {
		p.Variables = make(map[string]string)
	}
	return &p, nil
}

// New returns an unnamed preset holding a copy of vars.
func New(name string, vars map[string]string) *Preset {
	v := make(map[string]string, len(vars))
	maps.Copy(v, vars)
	return &Preset{Name: name, Variables: v}
}

// WithOverrides returns a copy of p whose variables are updated from overrides.
// p is left unchanged.
func (p *Preset) WithOverrides(overrides map[string]string) *Preset {
	out := *p
	out.Variables = make(map[string]string, len(p.Variables)+len(overrides))
	maps.Copy(out.Variables, p.Variables)
	maps.Copy(out.Variables, overrides)
	return &out
}

// ParseOverrides parses "name=value" pairs. Later pairs win.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid variable %q: expected 'name=value'", pair)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}
