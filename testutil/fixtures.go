/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for shomer.
package testutil

import (
	"path/filepath"
	"testing"

	"bennypowers.dev/shomer/internal/mapfs"
)

// NewProjectFS builds an in-memory project filesystem from inline file
// contents, with each path joined under rootPath.
func NewProjectFS(t *testing.T, rootPath string, files map[string]string) *mapfs.MapFileSystem {
	t.Helper()

	mfs := mapfs.New()
	for path, content := range files {
		mfs.AddFile(filepath.Join(rootPath, path), content, 0644)
	}
	return mfs
}
