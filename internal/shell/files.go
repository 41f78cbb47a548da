package shell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ensureDir creates dir and any missing parents.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &DirectoryCreationError{Path: dir, Err: err}
	}
	return nil
}

// writeFileAtomic replaces path with data. The content goes to a temporary
// file in the same directory first, so readers never see a partial file and
// a failed write leaves the previous content in place.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		_ = os.Remove(tmpName)
		if writeErr != nil {
			return fmt.Errorf("failed to write %s: %w", path, writeErr)
		}
		return fmt.Errorf("failed to close %s: %w", path, closeErr)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}

// copyReader writes everything from src to dst, overwriting dst.
func copyReader(dst string, src io.Reader) error {
	out, err := os.Create(dst) // #nosec G304 - destination derived from theme paths
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	_, copyErr := io.Copy(out, src)
	closeErr := out.Close()

	if copyErr != nil {
		return fmt.Errorf("failed to copy to %s: %w", dst, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", dst, closeErr)
	}
	return nil
}

// copyFile copies src to dst, overwriting dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src) // #nosec G304 - source derived from theme paths
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	return copyReader(dst, in)
}
