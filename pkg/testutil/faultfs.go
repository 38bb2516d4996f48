package testutil

import (
	"io/fs"

	"github.com/arthur-debert/relink/pkg/types"
)

// FaultFS wraps a real types.FS and lets tests fail individual operations
// to drive the engine's error and rollback branches. A nil hook passes
// the call through untouched.
type FaultFS struct {
	Inner types.FS

	// Hooks run before the wrapped call. A non-nil return fails the
	// operation with that error instead of performing it.
	BeforeRename  func(oldpath, newpath string) error
	BeforeSymlink func(oldname, newname string) error
	BeforeStat    func(name string) error
	BeforeLstat   func(name string) error
}

// NewFaultFS wraps inner with no hooks installed.
func NewFaultFS(inner types.FS) *FaultFS {
	return &FaultFS{Inner: inner}
}

func (f *FaultFS) Stat(name string) (fs.FileInfo, error) {
	if f.BeforeStat != nil {
		if err := f.BeforeStat(name); err != nil {
			return nil, err
		}
	}
	return f.Inner.Stat(name)
}

func (f *FaultFS) Lstat(name string) (fs.FileInfo, error) {
	if f.BeforeLstat != nil {
		if err := f.BeforeLstat(name); err != nil {
			return nil, err
		}
	}
	return f.Inner.Lstat(name)
}

func (f *FaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return f.Inner.ReadDir(name)
}

func (f *FaultFS) Readlink(name string) (string, error) {
	return f.Inner.Readlink(name)
}

func (f *FaultFS) MkdirAll(path string, perm fs.FileMode) error {
	return f.Inner.MkdirAll(path, perm)
}

func (f *FaultFS) Rename(oldpath, newpath string) error {
	if f.BeforeRename != nil {
		if err := f.BeforeRename(oldpath, newpath); err != nil {
			return err
		}
	}
	return f.Inner.Rename(oldpath, newpath)
}

func (f *FaultFS) Symlink(oldname, newname string) error {
	if f.BeforeSymlink != nil {
		if err := f.BeforeSymlink(oldname, newname); err != nil {
			return err
		}
	}
	return f.Inner.Symlink(oldname, newname)
}

func (f *FaultFS) Remove(name string) error {
	return f.Inner.Remove(name)
}
