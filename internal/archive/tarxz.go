// Package archive packs and unpacks installed themes as .tar.xz files.
package archive

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/GradienceTeam/gradience-shell/internal/security"
)

// MaxExtractSize bounds the total decompressed size accepted by ImportTarXz.
const MaxExtractSize = 100 * 1024 * 1024

// ExportTarXz writes the tree under srcDir to w as an xz-compressed tar
// stream. Entries are named prefix/<relative path>.
func ExportTarXz(srcDir, prefix string, w io.Writer) error {
	info, err := os.Stat(srcDir)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", srcDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", srcDir)
	}

	xzw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	tw := tar.NewWriter(xzw)

	walkErr := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(filepath.Join(prefix, rel))

		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() && !info.IsDir() {
			// Symlinks and devices have no place in a theme.
			return nil
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = name
		if info.IsDir() {
			header.Name += "/"
		}

		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("failed to write header for %s: %w", name, err)
		}
		if info.IsDir() {
			return nil
		}

		f, err := os.Open(path) // #nosec G304 - walking the theme directory
		if err != nil {
			return err
		}
		_, copyErr := io.Copy(tw, f)
		closeErr := f.Close()
		if copyErr != nil {
			return fmt.Errorf("failed to archive %s: %w", name, copyErr)
		}
		return closeErr
	})
	if walkErr != nil {
		return walkErr
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finish tar stream: %w", err)
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to finish xz stream: %w", err)
	}
	return nil
}

// ExportFile is ExportTarXz into a newly created file at dest.
func ExportFile(srcDir, prefix, dest string) error {
	out, err := os.Create(dest) // #nosec G304 - user-chosen export path
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}

	exportErr := ExportTarXz(srcDir, prefix, out)
	closeErr := out.Close()
	if exportErr != nil {
		_ = os.Remove(dest)
		return exportErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", dest, closeErr)
	}
	return nil
}

// ErrOutsidePrefix is returned when an archive member is not under the
// expected top-level directory.
var ErrOutsidePrefix = errors.New("archive member outside theme directory")

// ImportTarXz extracts an xz-compressed tar stream into destDir and returns
// the extracted file paths. Members escaping destDir, links and oversized
// archives are rejected. A non-empty prefix also rejects every member that is
// not prefix itself or below it, before that member is written.
func ImportTarXz(r io.Reader, destDir, prefix string) ([]string, error) {
	xzr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}

	tr := tar.NewReader(security.NewLimitedReader(xzr, MaxExtractSize))
	var extracted []string

	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return extracted, fmt.Errorf("failed to read tar entry: %w", err)
		}

		if err := security.ValidateArchivePath(header.Name, destDir); err != nil {
			return extracted, err
		}
		if prefix != "" && !underPrefix(header.Name, prefix) {
			return extracted, fmt.Errorf("%w: %s (expected %s/)", ErrOutsidePrefix, header.Name, prefix)
		}
		target := filepath.Join(destDir, filepath.FromSlash(header.Name))

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return extracted, fmt.Errorf("failed to create %s: %w", target, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return extracted, fmt.Errorf("failed to create %s: %w", filepath.Dir(target), err)
			}
			if err := writeEntry(target, tr); err != nil {
				return extracted, err
			}
			extracted = append(extracted, target)
		default:
			return extracted, fmt.Errorf("unsupported archive entry %s (type %c)", header.Name, header.Typeflag)
		}
	}

	return extracted, nil
}

// InstallTarXz installs the prefix directory of an archive into destDir.
// The archive is unpacked into a staging directory next to the target and
// checked for the required files (relative to prefix) first; destDir/prefix
// is only replaced once the whole archive has been accepted.
func InstallTarXz(r io.Reader, destDir, prefix string, required ...string) ([]string, error) {
	if prefix == "" {
		return nil, errors.New("install requires a theme directory name")
	}

	staging, err := os.MkdirTemp(destDir, ".import-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(staging) }()

	staged, err := ImportTarXz(r, staging, prefix)
	if err != nil {
		return nil, err
	}

	stagedRoot := filepath.Join(staging, prefix)
	for _, rel := range required {
		info, err := os.Stat(filepath.Join(stagedRoot, filepath.FromSlash(rel)))
		if err != nil || !info.Mode().IsRegular() {
			return nil, fmt.Errorf("archive does not contain %s/%s", prefix, rel)
		}
	}

	target := filepath.Join(destDir, prefix)
	if err := os.RemoveAll(target); err != nil {
		return nil, fmt.Errorf("failed to replace %s: %w", target, err)
	}
	if err := os.Rename(stagedRoot, target); err != nil {
		return nil, fmt.Errorf("failed to install %s: %w", target, err)
	}

	installed := make([]string, 0, len(staged))
	for _, path := range staged {
		rel, err := filepath.Rel(staging, path)
		if err != nil {
			return nil, err
		}
		installed = append(installed, filepath.Join(destDir, rel))
	}
	return installed, nil
}

func underPrefix(name, prefix string) bool {
	clean := strings.TrimSuffix(filepath.ToSlash(filepath.Clean(name)), "/")
	return clean == prefix || strings.HasPrefix(clean, prefix+"/")
}

func writeEntry(target string, r io.Reader) error {
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644) // #nosec G304 - validated archive path
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}

	_, copyErr := io.Copy(out, r)
	closeErr := out.Close()
	if copyErr != nil {
		return fmt.Errorf("failed to extract %s: %w", target, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", target, closeErr)
	}
	return nil
}
