package prefs

import (
	"context"
	"errors"
	"testing"
)

type testParent struct{ name string }

func (p testParent) ApplicationName() string { return p.name }

func TestNewResetGroup(t *testing.T) {
	g, err := NewResetGroup(testParent{name: "gradience-shell"}, nil)
	if err != nil {
		t.Fatalf("NewResetGroup() error = %v", err)
	}
	if g.Application() != "gradience-shell" {
		t.Errorf("Application() = %q", g.Application())
	}
	if len(g.Actions()) != 0 {
		t.Errorf("new group has actions: %v", g.Actions())
	}

	if g.parent == nil {
		t.Error("parent not stored")
	}

	if _, err := NewResetGroup(nil, nil); err == nil {
		t.Error("expected error for nil parent")
	}
}

func TestResetRunsActionsInOrder(t *testing.T) {
	g, _ := NewResetGroup(testParent{name: "app"}, nil)

	var order []string
	g.OnReset("theme", func(context.Context) error { order = append(order, "theme"); return nil })
	g.OnReset("files", func(context.Context) error { order = append(order, "files"); return nil })

	if err := g.Reset(context.Background()); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if len(order) != 2 || order[0] != "theme" || order[1] != "files" {
		t.Errorf("order = %v", order)
	}
	if names := g.Actions(); len(names) != 2 || names[0] != "theme" {
		t.Errorf("Actions() = %v", names)
	}
}

func TestResetJoinsErrors(t *testing.T) {
	g, _ := NewResetGroup(testParent{name: "app"}, nil)

	errTheme := errors.New("gsettings unavailable")
	ran := false
	g.OnReset("theme", func(context.Context) error { return errTheme })
	g.OnReset("files", func(context.Context) error { ran = true; return nil })

	err := g.Reset(context.Background())
	if !errors.Is(err, errTheme) {
		t.Fatalf("Reset() error = %v, want %v", err, errTheme)
	}
	if !ran {
		t.Error("later action should still run after a failure")
	}
}

func TestResetStopsOnCancelledContext(t *testing.T) {
	g, _ := NewResetGroup(testParent{name: "app"}, nil)

	ran := false
	g.OnReset("theme", func(context.Context) error { ran = true; return nil })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Reset(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Reset() error = %v, want context.Canceled", err)
	}
	if ran {
		t.Error("action ran with a cancelled context")
	}
}
