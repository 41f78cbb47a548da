package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/GradienceTeam/gradience-shell/internal/shell"
)

// shellVersionValue is a --shell-version flag that only accepts supported versions.
type shellVersionValue struct {
	version int
	set     bool
}

var _ pflag.Value = (*shellVersionValue)(nil)

func (s *shellVersionValue) String() string {
	if !s.set {
		return ""
	}
	return strconv.Itoa(s.version)
}

func (s *shellVersionValue) Set(value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("shell version must be a number: %q", value)
	}
	if err := shell.ValidateVersion(v); err != nil {
		return err
	}
	s.version = v
	s.set = true
	return nil
}

func (s *shellVersionValue) Type() string {
	return "version"
}

// addShellVersionFlag registers --shell-version on flags.
func addShellVersionFlag(flags *pflag.FlagSet, v *shellVersionValue) {
	flags.Var(v, "shell-version", fmt.Sprintf("target GNOME Shell version %v (default: detect)", shell.SupportedVersions))
}
