package executor

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"
	"time"
)

func TestRealProcessRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	runner := NewRealProcessRunner()
	ctx := context.Background()

	t.Run("captures stdout", func(t *testing.T) {
		stdout, _, err := runner.Run(ctx, "sh", []string{"-c", "printf hello"}, nil)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if string(stdout) != "hello" {
			t.Errorf("stdout = %q, want %q", stdout, "hello")
		}
	})

	t.Run("captures stderr and exit code on failure", func(t *testing.T) {
		_, stderr, err := runner.Run(ctx, "sh", []string{"-c", "echo boom >&2; exit 3"}, nil)
		if err == nil {
			t.Fatal("expected error for non-zero exit")
		}
		if string(stderr) != "boom\n" {
			t.Errorf("stderr = %q, want %q", stderr, "boom\n")
		}
		if code := ExitCode(err); code != 3 {
			t.Errorf("ExitCode() = %d, want 3", code)
		}
	})

	t.Run("missing binary", func(t *testing.T) {
		_, _, err := runner.Run(ctx, "/nonexistent/binary", nil, nil)
		if err == nil {
			t.Fatal("expected error for missing binary")
		}
		if code := ExitCode(err); code != -1 {
			t.Errorf("ExitCode() = %d, want -1", code)
		}
	})
}

func TestMockProcessRunner(t *testing.T) {
	t.Run("records calls", func(t *testing.T) {
		m := NewMockProcessRunner()
		_, _, _ = m.Run(context.Background(), "/usr/bin/sassc", []string{"in.scss", "out.css"}, nil)
		_, _, _ = m.Run(context.Background(), "gsettings", []string{"get", "a", "b"}, nil)

		if m.CallCount() != 2 {
			t.Fatalf("CallCount() = %d, want 2", m.CallCount())
		}
		if m.Calls[0].Path != "/usr/bin/sassc" {
			t.Errorf("first path = %q", m.Calls[0].Path)
		}
		if last := m.LastCall(); last.Path != "gsettings" || len(last.Args) != 3 {
			t.Errorf("LastCall() = %+v", last)
		}
	})

	t.Run("error", func(t *testing.T) {
		m := NewErrorMockProcessRunner("failed")
		_, stderr, err := m.Run(context.Background(), "x", nil, nil)
		if err == nil || string(stderr) != "failed" {
			t.Errorf("Run() = %q, %v", stderr, err)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		m := NewTimeoutMockProcessRunner()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, _, err := m.Run(ctx, "x", nil, nil)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Run() error = %v, want deadline exceeded", err)
		}
	})

	t.Run("delay", func(t *testing.T) {
		m := NewSuccessMockProcessRunner([]byte("done"))
		m.Delay = 5 * time.Millisecond

		stdout, _, err := m.Run(context.Background(), "x", nil, nil)
		if err != nil || string(stdout) != "done" {
			t.Errorf("Run() = %q, %v", stdout, err)
		}

		m.Delay = time.Second
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		if _, _, err := m.Run(ctx, "x", nil, nil); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Run() error = %v, want deadline exceeded before delay elapses", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		m := NewSuccessMockProcessRunner([]byte("ok"))
		stdout, _, err := m.Run(context.Background(), "x", nil, nil)
		if err != nil || string(stdout) != "ok" {
			t.Errorf("Run() = %q, %v", stdout, err)
		}
	})
}
