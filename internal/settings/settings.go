// Package settings reads and writes desktop settings keys.
package settings

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/GradienceTeam/gradience-shell/internal/executor"
)

// Store is a string-valued key/value settings backend addressed by schema and key.
type Store interface {
	GetString(ctx context.Context, schema, key string) (string, error)
	SetString(ctx context.Context, schema, key, value string) error
}

// GSettings talks to the GSettings database through the gsettings CLI.
type GSettings struct {
	path   string
	runner executor.ProcessRunner
}

// NewGSettings returns a Store backed by the gsettings binary found at path.
// An empty path means "gsettings" resolved from $PATH.
func NewGSettings(path string, runner executor.ProcessRunner) *GSettings {
	if path == "" {
		path = "gsettings"
	}
	if runner == nil {
		runner = executor.NewRealProcessRunner()
	}
	return &GSettings{path: path, runner: runner}
}

// GetString returns the unquoted string value of schema/key.
func (g *GSettings) GetString(ctx context.Context, schema, key string) (string, error) {
	stdout, stderr, err := g.runner.Run(ctx, g.path, []string{"get", schema, key}, nil)
	if err != nil {
		return "", fmt.Errorf("gsettings get %s %s: %w%s", schema, key, err, stderrSuffix(stderr))
	}
	return unquoteVariant(strings.TrimSpace(string(stdout))), nil
}

// SetString writes value to schema/key.
func (g *GSettings) SetString(ctx context.Context, schema, key, value string) error {
	_, stderr, err := g.runner.Run(ctx, g.path, []string{"set", schema, key, quoteVariant(value)}, nil)
	if err != nil {
		return fmt.Errorf("gsettings set %s %s: %w%s", schema, key, err, stderrSuffix(stderr))
	}
	return nil
}

// quoteVariant renders value as a GVariant string literal.
func quoteVariant(value string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(value) + "'"
}

// unquoteVariant reverses the quoting gsettings applies to string output.
func unquoteVariant(s string) string {
	if len(s) < 2 {
		return s
	}
	q := s[0]
	if (q != '\'' && q != '"') || s[len(s)-1] != q {
		return s
	}
	inner := s[1 : len(s)-1]
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}

func stderrSuffix(stderr []byte) string {
	msg := strings.TrimSpace(string(stderr))
	if msg == "" {
		return ""
	}
	return ": " + msg
}

// Write is one recorded SetString call.
type Write struct {
	Schema string
	Key    string
	Value  string
}

// Memory is an in-process Store. It records every write in order, which
// makes it useful both for tests and for dry runs.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
	writes []Write
}

// NewMemory creates an empty in-memory store. The zero value is also ready
// to use.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// GetString returns the stored value, or "" if it was never set.
func (m *Memory) GetString(_ context.Context, schema, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[schema+"/"+key], nil
}

// SetString stores value and records the write.
func (m *Memory) SetString(_ context.Context, schema, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[schema+"/"+key] = value
	m.writes = append(m.writes, Write{Schema: schema, Key: key, Value: value})
	return nil
}

// Writes returns a copy of all recorded writes in call order.
func (m *Memory) Writes() []Write {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Write(nil), m.writes...)
}
