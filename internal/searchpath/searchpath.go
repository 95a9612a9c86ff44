// Package searchpath resolves the directories scanned for executables.
package searchpath

import (
	"os"
	"path/filepath"
	"strings"

	"pathrun/internal/config"
	"pathrun/internal/domain"
)

// Split breaks a PATH-style list on the platform separator, dropping empty entries
func Split(list string) domain.SearchPath {
	var out domain.SearchPath
	for _, p := range strings.Split(list, string(os.PathListSeparator)) {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Resolve builds the search path from the PATH value env and cfg.
// Configured search_paths replace env entirely; extra_paths are appended.
// Duplicates keep their first position.
func Resolve(env string, cfg *config.Config) domain.SearchPath {
	paths := Split(env)
	var extra []string
	if cfg != nil {
		if len(cfg.SearchPaths) > 0 {
			paths = append(domain.SearchPath{}, cfg.SearchPaths...)
		}
		extra = cfg.ExtraPaths
	}
	paths = append(paths, extra...)

	seen := make(map[string]bool, len(paths))
	out := make(domain.SearchPath, 0, len(paths))
	for _, p := range paths {
		p = expandHome(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// FromEnvironment resolves the search path from the process environment
func FromEnvironment(cfg *config.Config) domain.SearchPath {
	return Resolve(os.Getenv("PATH"), cfg)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
