package indexer

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"pathrun/internal/domain"
	"pathrun/internal/index"
)

// RunResult is the outcome of one index run. Snapshot is nil unless the
// outcome is domain.RunCompleted.
type RunResult struct {
	ID       string
	Outcome  domain.RunOutcome
	Snapshot *index.Snapshot
	Partial  int // names collected by an aborted run
	Elapsed  time.Duration
	Paths    domain.SearchPath
}

// Scan collects the base names of all executables below paths. Missing or
// unreadable directories are skipped. ctx is checked before every directory
// entry; once it is done the walk stops and the run is reported as aborted.
func Scan(ctx context.Context, paths domain.SearchPath) RunResult {
	start := time.Now()
	found := make(map[string]struct{})

	aborted := false
	for _, root := range paths {
		if ctx.Err() != nil || !scanDirectory(ctx, root, found) {
			aborted = true
			break
		}
	}

	res := RunResult{
		Elapsed: time.Since(start),
		Paths:   paths,
	}
	if aborted {
		res.Outcome = domain.RunAborted
		res.Partial = len(found)
		return res
	}
	res.Outcome = domain.RunCompleted
	res.Snapshot = index.FromSet(found)
	return res
}

// scanDirectory walks one search-path entry. It returns false if the walk
// was interrupted by ctx.
func scanDirectory(ctx context.Context, root string, found map[string]struct{}) bool {
	// PATH entries are often symlinks themselves (/bin -> usr/bin)
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return true
	}
	if info, err := os.Stat(resolved); err != nil || !info.IsDir() {
		return true
	}

	err = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		// Unreadable entries and directories are skipped
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}

		if entryIsExecutable(path, d) {
			found[d.Name()] = struct{}{}
		}
		return nil
	})

	return err == nil || ctx.Err() == nil
}

// entryIsExecutable reports whether a walked entry is a regular file, or a
// symlink resolving to one, that the process may execute
func entryIsExecutable(path string, d fs.DirEntry) bool {
	var info fs.FileInfo
	var err error

	switch {
	case d.Type().IsRegular():
		info, err = d.Info()
	case d.Type()&fs.ModeSymlink != 0:
		info, err = os.Stat(path)
	default:
		return false
	}
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return isExecutable(path, uint32(info.Mode().Perm()))
}
