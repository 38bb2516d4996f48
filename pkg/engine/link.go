package engine

import (
	"github.com/arthur-debert/relink/pkg/types"
)

// symlinkLinker implements types.Linker with an absolute-target symlink.
// An absolute target keeps the link valid no matter where it is resolved
// from, matching junction semantics as closely as POSIX allows.
type symlinkLinker struct {
	fs types.FS
}

// NewLinker returns the default directory linker for this platform.
func NewLinker(fs types.FS) types.Linker {
	return &symlinkLinker{fs: fs}
}

func (l *symlinkLinker) CreateDirLink(linkPath, targetPath string) error {
	return l.fs.Symlink(targetPath, linkPath)
}
