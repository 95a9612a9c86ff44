//go:build unix

package indexer

import "golang.org/x/sys/unix"

// isExecutable reports whether the calling process may execute path
func isExecutable(path string, _ uint32) bool {
	return unix.Access(path, unix.X_OK) == nil
}
