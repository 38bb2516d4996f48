// Package privilege answers one question: can this process create
// directory links?
//
// On POSIX systems any user can symlink, so the check nearly always
// passes. On platforms where reparse-point creation is a privileged
// operation the probe fails for unelevated processes. relink never
// re-launches itself; when the capability is missing the run aborts
// before any task starts.
package privilege

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/relink/pkg/logging"
)

// HasElevatedRights probes for the ability to create a directory link by
// creating and removing one in a temporary directory.
func HasElevatedRights() bool {
	logger := logging.GetLogger("privilege")

	dir, err := os.MkdirTemp("", "relink-probe-")
	if err != nil {
		logger.Warn().Err(err).Msg("Cannot create probe directory")
		return false
	}
	defer func() { _ = os.RemoveAll(dir) }()

	target := filepath.Join(dir, "target")
	if err := os.Mkdir(target, 0755); err != nil {
		logger.Warn().Err(err).Msg("Cannot create probe target")
		return false
	}

	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		logger.Warn().Err(err).Msg("Directory link probe failed")
		return false
	}

	logger.Debug().Msg("Directory link probe succeeded")
	return true
}
