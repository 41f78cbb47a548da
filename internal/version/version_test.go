package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = origVersion, origCommit, origDate })

	Version, Commit, Date = "1.2.3", unknown, unknown
	if got := String(); !strings.HasPrefix(got, "gradience-shell 1.2.3 (") || strings.Contains(got, "commit") {
		t.Errorf("String() without build info = %q", got)
	}

	Commit, Date = "0123456789abcdef", "2026-01-02T03:04:05Z"
	got := String()
	if !strings.Contains(got, "commit 01234567,") {
		t.Errorf("String() = %q, want shortened commit", got)
	}
	if !strings.Contains(got, "built 2026-01-02T03:04:05Z") {
		t.Errorf("String() = %q, want build date", got)
	}
}

func TestShortCommit(t *testing.T) {
	tests := map[string]string{
		"abc":              "abc",
		"0123456789abcdef": "01234567",
		unknown:            unknown,
	}
	for commit, want := range tests {
		if got := (Info{Commit: commit}).ShortCommit(); got != want {
			t.Errorf("ShortCommit(%q) = %q, want %q", commit, got, want)
		}
	}
}
