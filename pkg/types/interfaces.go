package types

import "io/fs"

// FS is the filesystem interface used throughout relink
type FS interface {
	// Inspection
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Readlink(name string) (string, error)

	// Mutation
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Symlink(oldname, newname string) error
	Remove(name string) error
}

// Reporter receives structured outcome events from the run coordinator.
// Implementations render them; the engine never inspects the result.
type Reporter interface {
	// OnTaskOutcome is called exactly once per task, in scan order.
	OnTaskOutcome(task DirectoryTask, outcome TaskOutcome)

	// OnRunComplete is called once after all tasks have finished.
	OnRunComplete(summary RunSummary)
}

// Linker creates a directory link at linkPath pointing at targetPath.
// The link must resolve transparently for all path operations, the way a
// directory junction does on NTFS. On POSIX systems this is a symlink to
// an absolute directory path.
type Linker interface {
	CreateDirLink(linkPath, targetPath string) error
}
