package shell

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedVersion is returned when the target GNOME Shell version is
// outside SupportedVersions.
var ErrUnsupportedVersion = errors.New("unsupported GNOME Shell version")

// MissingVariableError reports a template placeholder with no value in the
// active variable mapping.
type MissingVariableError struct {
	Key    string
	Source string // template the placeholder was found in, if known
}

func (e *MissingVariableError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("variable %q referenced by %s is not defined by the preset", e.Key, e.Source)
	}
	return fmt.Sprintf("variable %q is not defined by the preset", e.Key)
}

// DirectoryCreationError reports a failure to create an output directory.
type DirectoryCreationError struct {
	Path string
	Err  error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("unable to create directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryCreationError) Unwrap() error { return e.Err }

// CompileError reports a sassc run that could not start or exited non-zero.
type CompileError struct {
	Compiler string
	Source   string
	ExitCode int // -1 if the process never ran to completion
	Stderr   string
	Err      error
}

func (e *CompileError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "failed to compile %s with %s", e.Source, e.Compiler)
	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, " (exit status %d)", e.ExitCode)
	}
	if e.Stderr != "" {
		fmt.Fprintf(&b, ": %s", e.Stderr)
	} else if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *CompileError) Unwrap() error { return e.Err }

// ThemeApplicationError wraps any failure surfaced by Generator.ApplyTheme.
// The theme may be partially written when it is returned.
type ThemeApplicationError struct {
	Err error
}

func (e *ThemeApplicationError) Error() string {
	return fmt.Sprintf("failed to apply GNOME Shell theme: %v", e.Err)
}

func (e *ThemeApplicationError) Unwrap() error { return e.Err }
