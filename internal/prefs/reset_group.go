// Package prefs holds toolkit-independent controllers for preferences panels.
package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// Parent is the view a group is attached to.
type Parent interface {
	ApplicationName() string
}

// ResetFunc is one action run when the user resets presets.
type ResetFunc func(ctx context.Context) error

type resetAction struct {
	name string
	fn   ResetFunc
}

// ResetGroup backs the "reset preset" preferences group. It owns no state of
// its own beyond the registered reset actions.
type ResetGroup struct {
	parent  Parent
	app     string
	logger  hclog.Logger
	actions []resetAction
}

// NewResetGroup attaches a reset group to parent. A nil logger discards output.
func NewResetGroup(parent Parent, logger hclog.Logger) (*ResetGroup, error) {
	if parent == nil {
		return nil, errors.New("reset group requires a parent")
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	g := &ResetGroup{
		parent: parent,
		app:    parent.ApplicationName(),
		logger: logger.Named("reset-group"),
	}

	g.SetupSignals()
	g.Setup()

	return g, nil
}

// SetupSignals wires the group's signal handlers. The group has none.
func (g *ResetGroup) SetupSignals() {}

// Setup runs post-construction setup. The group has none.
func (g *ResetGroup) Setup() {}

// Application returns the name of the application the group belongs to.
func (g *ResetGroup) Application() string { return g.app }

// OnReset registers fn to run on Reset, after previously registered actions.
func (g *ResetGroup) OnReset(name string, fn ResetFunc) {
	g.actions = append(g.actions, resetAction{name: name, fn: fn})
}

// Actions returns the registered action names in run order.
func (g *ResetGroup) Actions() []string {
	names := make([]string, len(g.actions))
	for i, a := range g.actions {
		names[i] = a.name
	}
	return names
}

// Reset runs every registered action in order. A failing action does not
// stop the ones after it; all failures are joined into the returned error.
func (g *ResetGroup) Reset(ctx context.Context) error {
	var errs []error
	for _, a := range g.actions {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		g.logger.Debug("running reset action", "action", a.name)
		if err := a.fn(ctx); err != nil {
			g.logger.Error("reset action failed", "action", a.name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", a.name, err))
		}
	}
	return errors.Join(errs...)
}
