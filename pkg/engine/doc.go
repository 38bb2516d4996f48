// Package engine implements the transactional directory-relocation
// protocol.
//
// Each candidate directory is processed independently by a small state
// machine: check the target, move the directory, create a directory link
// at the original path, verify the link resolves. Any failure after the
// move triggers a best-effort rollback that moves the directory back.
// The protocol is idempotent: an already-relocated directory is detected
// by the target check and skipped, so repeated runs are safe.
package engine
