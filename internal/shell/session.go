package shell

import (
	"fmt"

	"github.com/mitchellh/go-ps"
)

// SessionProbe reports whether a GNOME Shell process is running.
type SessionProbe interface {
	ShellRunning() (bool, error)
}

// ProcessProbe finds gnome-shell in the process table using go-ps.
type ProcessProbe struct {
	Executable string
}

// NewProcessProbe returns a probe for the "gnome-shell" executable.
func NewProcessProbe() *ProcessProbe {
	return &ProcessProbe{Executable: "gnome-shell"}
}

// ShellRunning reports whether any process with the probe's executable name exists.
func (p *ProcessProbe) ShellRunning() (bool, error) {
	pids, err := findProcessByName(p.Executable)
	if err != nil {
		return false, err
	}
	return len(pids) > 0, nil
}

// findProcessByName finds all processes with the given executable name.
func findProcessByName(name string) ([]int, error) {
	processes, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to get process list: %w", err)
	}

	var pids []int
	for _, p := range processes {
		if p.Executable() == name {
			pids = append(pids, p.Pid())
		}
	}

	return pids, nil
}
