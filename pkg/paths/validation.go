package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/types"
)

// ValidateRequest enforces the run preconditions on an already-resolved
// request:
//   - the source root exists and is a directory
//   - the roots are not the same path
//   - neither root is a descendant of the other (a target under the
//     source would end up linked into itself)
//
// Violations are fatal; nothing is processed when any of these fail.
func ValidateRequest(fs types.FS, req types.RelocationRequest) error {
	info, err := fs.Stat(req.SourceRoot)
	if os.IsNotExist(err) {
		return errors.Newf(errors.ErrSourceMissing, "source directory does not exist: %s", req.SourceRoot)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrSourceMissing, "cannot access source directory %s", req.SourceRoot)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrSourceMissing, "source is not a directory: %s", req.SourceRoot)
	}

	if req.SourceRoot == req.TargetRoot {
		return errors.New(errors.ErrPathCycle, "source and target are the same directory")
	}
	if isDescendant(req.SourceRoot, req.TargetRoot) {
		return errors.Newf(errors.ErrPathCycle,
			"target %s is inside source %s", req.TargetRoot, req.SourceRoot)
	}
	if isDescendant(req.TargetRoot, req.SourceRoot) {
		return errors.Newf(errors.ErrPathCycle,
			"source %s is inside target %s", req.SourceRoot, req.TargetRoot)
	}

	return nil
}

// isDescendant reports whether child is strictly below parent.
// Both paths must already be absolute and cleaned.
func isDescendant(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	if rel == "." || rel == ".." {
		return false
	}
	return !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
