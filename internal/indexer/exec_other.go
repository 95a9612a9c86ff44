//go:build !unix

package indexer

// isExecutable falls back to the permission bits where access(2) is unavailable
func isExecutable(_ string, perm uint32) bool {
	return perm&0o111 != 0
}
