// Package scanner discovers relocation candidates.
//
// A candidate is an immediate subdirectory of the source root. The scan is
// a one-shot snapshot: it never recurses and makes no liveness guarantees.
// Re-scan by calling again.
package scanner

import (
	iofs "io/fs"
	"path"
	"path/filepath"

	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/logging"
	"github.com/arthur-debert/relink/pkg/types"
)

// Candidate is one directory found under the source root.
type Candidate struct {
	Name     string
	FullPath string
}

// ListSubdirectories returns the immediate subdirectories of root in
// directory order. Entries whose name matches one of the exclude globs
// are dropped. A symlinked entry that resolves to a directory counts as
// a subdirectory: after a relocation the source entries are exactly such
// links, and they must re-enter the pipeline so a re-run skips them on
// the target-exists check instead of reporting nothing to do.
func ListSubdirectories(fs types.FS, root string, exclude []string) ([]Candidate, error) {
	logger := logging.GetLogger("scanner")

	entries, err := fs.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrScanFailed, "cannot list %s", root)
	}

	var candidates []Candidate
	for _, entry := range entries {
		full := filepath.Join(root, entry.Name())
		if !isDirectory(fs, entry, full) {
			logger.Trace().Str("name", entry.Name()).Msg("Skipping non-directory entry")
			continue
		}
		if matchesAny(entry.Name(), exclude) {
			logger.Debug().Str("name", entry.Name()).Msg("Excluded by pattern")
			continue
		}
		candidates = append(candidates, Candidate{
			Name:     entry.Name(),
			FullPath: full,
		})
	}

	logger.Debug().Int("count", len(candidates)).Str("root", root).Msg("Scan complete")
	return candidates, nil
}

// isDirectory classifies one entry. ReadDir does not follow links, so a
// symlinked directory reports as a non-dir entry; those are resolved
// with Stat. Dangling links and links to files stay excluded.
func isDirectory(fs types.FS, entry iofs.DirEntry, full string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&iofs.ModeSymlink == 0 {
		return false
	}
	info, err := fs.Stat(full)
	return err == nil && info.IsDir()
}

func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := path.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}
