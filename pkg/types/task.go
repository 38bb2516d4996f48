package types

import "path/filepath"

// RelocationRequest describes one run: move every immediate subdirectory
// of SourceRoot into TargetRoot and leave a directory link behind.
// Both paths are absolute by the time the engine sees them.
type RelocationRequest struct {
	SourceRoot string
	TargetRoot string
}

// DirectoryTask is the unit of work for one candidate directory.
// Paths are fixed at creation and never mutated afterwards.
type DirectoryTask struct {
	Name       string
	SourcePath string
	TargetPath string
}

// NewDirectoryTask derives a task from a request and a candidate name.
func NewDirectoryTask(req RelocationRequest, name string) DirectoryTask {
	return DirectoryTask{
		Name:       name,
		SourcePath: filepath.Join(req.SourceRoot, name),
		TargetPath: filepath.Join(req.TargetRoot, name),
	}
}
