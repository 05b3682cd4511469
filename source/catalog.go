/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package source

import (
	"sort"

	"bennypowers.dev/shomer/config"
)

// Catalog is the static table of known components. It drives
// per-component parsing and the audit sweep.
type Catalog struct {
	entries []config.ComponentEntry
	bySlug  map[string]config.ComponentEntry
}

// NewCatalog builds a catalog from config entries. Entry paths are
// used verbatim as source IDs; use FSProvider.Catalog for entries
// resolved against a project root.
func NewCatalog(entries []config.ComponentEntry) *Catalog {
	bySlug := make(map[string]config.ComponentEntry, len(entries))
	for _, entry := range entries {
		bySlug[entry.Slug] = entry
	}
	return &Catalog{entries: entries, bySlug: bySlug}
}

// Get returns the entry for slug.
func (c *Catalog) Get(slug string) (config.ComponentEntry, bool) {
	entry, ok := c.bySlug[slug]
	return entry, ok
}

// All returns every entry, sorted by slug.
func (c *Catalog) All() []config.ComponentEntry {
	entries := make([]config.ComponentEntry, len(c.entries))
	copy(entries, c.entries)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Slug < entries[j].Slug
	})
	return entries
}

// ByCategory returns entries in the given category, sorted by slug.
// An empty category returns all entries.
func (c *Catalog) ByCategory(category string) []config.ComponentEntry {
	if category == "" {
		return c.All()
	}
	var entries []config.ComponentEntry
	for _, entry := range c.All() {
		if entry.Category == category {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Slugs returns every known component slug, sorted.
func (c *Catalog) Slugs() []string {
	slugs := make([]string, 0, len(c.entries))
	for _, entry := range c.entries {
		slugs = append(slugs, entry.Slug)
	}
	sort.Strings(slugs)
	return slugs
}
