//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates a temporary directory used as $HOME
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateBinDir creates a directory of executable scripts in the workspace
func (tf *TUITestFramework) CreateBinDir(name string, executables ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	dir := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create bin dir: %w", err)
	}
	for _, exe := range executables {
		if err := os.WriteFile(filepath.Join(dir, exe), []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", exe, err)
		}
	}
	return dir, nil
}

// WriteConfig writes config.toml where pathrun looks for it
func (tf *TUITestFramework) WriteConfig(contents string) (string, error) {
	dir := filepath.Join(tf.workspace, ".config", "pathrun")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "config.toml")
	return path, os.WriteFile(path, []byte(contents), 0644)
}
