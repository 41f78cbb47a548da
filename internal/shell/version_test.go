package shell

import (
	"context"
	"errors"
	"testing"

	"github.com/GradienceTeam/gradience-shell/internal/executor"
)

func TestParseDetectedVersion(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "42", want: 42},
		{raw: "42.9", want: 42},
		{raw: "43.2", want: 43},
		{raw: " 43.alpha\n", want: 43},
		{raw: "44.0", wantErr: true},
		{raw: "40.1", wantErr: true},
		{raw: "4", wantErr: true},
		{raw: "4x", wantErr: true},
		{raw: "3.38.4", wantErr: true},
		{raw: "3", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "unknown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseDetectedVersion(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedVersion) {
					t.Fatalf("ParseDetectedVersion(%q) error = %v, want ErrUnsupportedVersion", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDetectedVersion(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseDetectedVersion(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidateVersion(t *testing.T) {
	for _, v := range SupportedVersions {
		if err := ValidateVersion(v); err != nil {
			t.Errorf("ValidateVersion(%d) error = %v", v, err)
		}
	}
	for _, v := range []int{0, 3, 41, 44, 45} {
		if err := ValidateVersion(v); !errors.Is(err, ErrUnsupportedVersion) {
			t.Errorf("ValidateVersion(%d) error = %v, want ErrUnsupportedVersion", v, err)
		}
	}
}

func TestCommandDetector(t *testing.T) {
	t.Run("parses gnome-shell output", func(t *testing.T) {
		runner := executor.NewSuccessMockProcessRunner([]byte("GNOME Shell 43.2\n"))
		d := NewCommandDetector(runner)

		got, err := d.DetectVersion(context.Background())
		if err != nil {
			t.Fatalf("DetectVersion() error = %v", err)
		}
		if got != "43.2" {
			t.Errorf("DetectVersion() = %q, want 43.2", got)
		}
		call := runner.LastCall()
		if call.Path != "gnome-shell" || len(call.Args) != 1 || call.Args[0] != "--version" {
			t.Errorf("unexpected call %+v", call)
		}
	})

	t.Run("no version in output", func(t *testing.T) {
		d := NewCommandDetector(executor.NewSuccessMockProcessRunner([]byte("GNOME Shell\n")))
		if _, err := d.DetectVersion(context.Background()); err == nil {
			t.Error("expected error for output without version")
		}
	})

	t.Run("binary fails", func(t *testing.T) {
		d := NewCommandDetector(executor.NewErrorMockProcessRunner("not found"))
		if _, err := d.DetectVersion(context.Background()); err == nil {
			t.Error("expected error when gnome-shell fails")
		}
	})
}
