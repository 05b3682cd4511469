/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package source provides the content-source abstraction that yields
// named text blobs for the registry and the rule store.
package source

import (
	"fmt"
	"path/filepath"

	"bennypowers.dev/shomer/config"
	"bennypowers.dev/shomer/fs"
)

// Scope selects which space a source belongs to.
type Scope string

const (
	// Global selects the global token stylesheets.
	Global Scope = "global"

	// Components selects the per-component stylesheets.
	Components Scope = "components"

	// Rules selects the design rule documents.
	Rules Scope = "rules"
)

// Source identifies one readable text blob.
type Source struct {
	// ID is the source identifier, usable with Provider.Read.
	ID string

	// Category is the provenance category label.
	Category string
}

// Provider lists and reads content sources. Implementations treat
// timeouts and availability as their own concern; callers degrade to
// empty results when a read fails.
type Provider interface {
	// List returns the sources in the given scope.
	List(scope Scope) ([]Source, error)

	// Read returns the raw text of the identified source.
	Read(id string) ([]byte, error)
}

// FSProvider resolves sources from a filesystem using the config's
// globs and component catalog. Source IDs are file paths.
type FSProvider struct {
	filesystem fs.FileSystem
	rootDir    string
	cfg        *config.Config
}

// NewFSProvider creates a provider rooted at rootDir.
func NewFSProvider(filesystem fs.FileSystem, rootDir string, cfg *config.Config) *FSProvider {
	return &FSProvider{filesystem: filesystem, rootDir: rootDir, cfg: cfg}
}

// List implements Provider.
func (p *FSProvider) List(scope Scope) ([]Source, error) {
	switch scope {
	case Global:
		files, err := p.cfg.ExpandTokens(p.filesystem, p.rootDir)
		if err != nil {
			return nil, err
		}
		sources := make([]Source, 0, len(files))
		for _, f := range files {
			sources = append(sources, Source{ID: f.Path, Category: f.Category})
		}
		return sources, nil

	case Components:
		sources := make([]Source, 0, len(p.cfg.Components))
		for _, entry := range p.cfg.Components {
			sources = append(sources, Source{ID: p.resolve(entry.Path), Category: entry.Category})
		}
		return sources, nil

	case Rules:
		paths, err := p.cfg.ExpandRules(p.filesystem, p.rootDir)
		if err != nil {
			return nil, err
		}
		sources := make([]Source, 0, len(paths))
		for _, path := range paths {
			sources = append(sources, Source{ID: path, Category: "rules"})
		}
		return sources, nil

	default:
		return nil, fmt.Errorf("unknown source scope %q", scope)
	}
}

// Read implements Provider.
func (p *FSProvider) Read(id string) ([]byte, error) {
	return p.filesystem.ReadFile(id)
}

// Resolve returns the provider's source ID for a config-relative path.
func (p *FSProvider) Resolve(path string) string {
	return p.resolve(path)
}

// Catalog builds the component catalog with entry paths resolved to
// this provider's source IDs.
func (p *FSProvider) Catalog() *Catalog {
	entries := make([]config.ComponentEntry, len(p.cfg.Components))
	copy(entries, p.cfg.Components)
	for i := range entries {
		entries[i].Path = p.resolve(entries[i].Path)
	}
	return NewCatalog(entries)
}

func (p *FSProvider) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.rootDir, path)
}
