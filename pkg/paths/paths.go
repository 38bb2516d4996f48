// Package paths provides path resolution and validation for relink.
//
// It normalizes user-supplied paths to absolute form, creates the target
// root on demand, and enforces the request preconditions (source exists,
// roots are distinct, neither root contains the other).
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/types"
)

// Resolve expands a leading ~ and makes the path absolute against the
// current working directory.
func Resolve(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}
	if strings.Contains(path, "\x00") {
		return "", errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	path = expandHome(path)

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve path %q", path)
	}
	return filepath.Clean(abs), nil
}

// EnsureDir makes sure path exists as a directory, creating it and any
// missing parents when necessary. Returns the path for chaining.
func EnsureDir(fs types.FS, path string) (string, error) {
	info, err := fs.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return "", errors.Newf(errors.ErrTargetCreate, "%s exists but is not a directory", path)
		}
		return path, nil
	}
	if !os.IsNotExist(err) {
		return "", errors.Wrapf(err, errors.ErrTargetCreate, "cannot stat %s", path)
	}
	if err := fs.MkdirAll(path, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrTargetCreate, "cannot create directory %s", path)
	}
	return path, nil
}

// expandHome replaces a leading ~/ with the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
