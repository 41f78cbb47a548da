// Package security guards theme archive extraction.
package security

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ValidateArchivePath checks that an archive member named name would be
// extracted inside baseDir.
func ValidateArchivePath(name, baseDir string) error {
	if name == "" {
		return fmt.Errorf("empty file path")
	}

	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return fmt.Errorf("absolute paths in archives are not allowed: %s", name)
	}

	for _, part := range strings.Split(filepath.ToSlash(name), "/") {
		if part == ".." {
			return fmt.Errorf("file path contains directory traversal (..): %s", name)
		}
	}

	cleanBase := filepath.Clean(baseDir)
	cleanFinal := filepath.Clean(filepath.Join(baseDir, name))
	if !strings.HasPrefix(cleanFinal, cleanBase+string(filepath.Separator)) && cleanFinal != cleanBase {
		return fmt.Errorf("file path would escape base directory: %s", name)
	}

	return nil
}

// ErrSizeLimit is returned once a LimitedReader has delivered its quota.
var ErrSizeLimit = fmt.Errorf("decompression size limit exceeded")

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// This prevents decompression bomb attacks when extracting archives.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		return 0, ErrSizeLimit
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
