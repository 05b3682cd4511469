/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package registry aggregates parsed token sources into queryable
// collections for the global and component token spaces.
//
// The registry holds no durable cache: every query re-parses its
// underlying sources, so the core stays read-only and safe under
// arbitrary concurrency. When multiple sources declare the same name
// the most-recently-parsed record wins; overwrites are counted for
// observability rather than rejected.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"bennypowers.dev/shomer/config"
	"bennypowers.dev/shomer/internal/logger"
	"bennypowers.dev/shomer/parser"
	"bennypowers.dev/shomer/source"
	"bennypowers.dev/shomer/token"
)

// SearchScope selects which record fields a search matches against.
type SearchScope string

const (
	// ScopeName matches token names only.
	ScopeName SearchScope = "name"

	// ScopeValue matches token values only.
	ScopeValue SearchScope = "value"

	// ScopeBoth matches names, values, and comments.
	ScopeBoth SearchScope = "both"
)

// ParseSearchScope parses a scope string, defaulting to ScopeBoth.
func ParseSearchScope(s string) (SearchScope, error) {
	switch s {
	case "", string(ScopeBoth):
		return ScopeBoth, nil
	case string(ScopeName):
		return ScopeName, nil
	case string(ScopeValue):
		return ScopeValue, nil
	default:
		return "", &BadRequestError{Message: fmt.Sprintf("invalid search scope %q: expected name, value, or both", s)}
	}
}

// SearchOptions configures a search query.
type SearchOptions struct {
	// Scope selects the fields to match. Defaults to ScopeBoth.
	Scope SearchScope

	// Limit caps the number of returned tokens. Zero means no limit.
	Limit int

	// Offset skips that many tokens of the name-sorted result.
	Offset int
}

// SearchResult is a page of a search query.
type SearchResult struct {
	// Tokens is the requested page, sorted by name.
	Tokens []*token.Record `json:"tokens"`

	// Total is the number of matches before pagination.
	Total int `json:"total"`

	// Limit and Offset echo the request.
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Stats aggregates counts over the global token space.
type Stats struct {
	// Total is the number of distinct token names.
	Total int `json:"total"`

	// BySource counts tokens per declaring source.
	BySource map[string]int `json:"bySource"`

	// ByCategory counts tokens per provenance category.
	ByCategory map[string]int `json:"byCategory"`

	// ByPrefix counts tokens per leading name prefix ("--ks-color").
	ByPrefix map[string]int `json:"byPrefix"`

	// Overwritten counts names that were declared by more than one
	// source (last-read-wins is the documented merge policy).
	Overwritten int `json:"overwritten"`
}

// Registry is the query surface over all parsed token sources.
type Registry struct {
	provider   source.Provider
	catalog    *source.Catalog
	parser     parser.Parser
	classifier *token.Classifier
	cfg        *config.Config
}

// New creates a registry over the given provider and catalog.
func New(provider source.Provider, catalog *source.Catalog, cfg *config.Config) *Registry {
	return &Registry{
		provider:   provider,
		catalog:    catalog,
		parser:     parser.NewCSSParser(),
		classifier: &token.Classifier{ComponentPrefixes: cfg.ComponentPrefixes()},
		cfg:        cfg,
	}
}

// Catalog returns the component catalog backing this registry.
func (r *Registry) Catalog() *source.Catalog {
	return r.catalog
}

// Classifier returns the value classifier used to enrich component
// records, configured with this registry's component prefixes.
func (r *Registry) Classifier() *token.Classifier {
	return r.classifier
}

// Globals re-parses the global sources and returns the merged records,
// sorted by name.
func (r *Registry) Globals() []*token.Record {
	merged, _ := r.parseScope(source.Global)
	return sortedRecords(merged)
}

// Get returns the named token from the union of the global and
// component spaces. An unknown name yields a NotFoundError carrying
// nearest-name suggestions.
func (r *Registry) Get(name string) (*token.Record, error) {
	if name == "" {
		return nil, &BadRequestError{Message: "token name is required"}
	}

	union := r.union()
	if rec, ok := union[name]; ok {
		return rec, nil
	}

	names := make([]string, 0, len(union))
	for n := range union {
		names = append(names, n)
	}
	return nil, &NotFoundError{
		Kind:        "token",
		Name:        name,
		Suggestions: NearestNames(name, names, 3),
	}
}

// Exists reports whether name resolves in the global or component space.
func (r *Registry) Exists(name string) bool {
	_, ok := r.union()[name]
	return ok
}

// Search matches pattern against the union of all parsed sources.
// Matching is case-insensitive substring; results sort by name and
// paginate with Limit and Offset.
func (r *Registry) Search(pattern string, opts SearchOptions) (*SearchResult, error) {
	if pattern == "" {
		return nil, &BadRequestError{Message: "search pattern is required"}
	}
	scope := opts.Scope
	if scope == "" {
		scope = ScopeBoth
	}

	needle := strings.ToLower(pattern)
	var matches []*token.Record
	for _, rec := range sortedRecords(r.union()) {
		if matchRecord(rec, needle, scope) {
			matches = append(matches, rec)
		}
	}

	result := &SearchResult{
		Total:  len(matches),
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}

	start := min(opts.Offset, len(matches))
	end := len(matches)
	if opts.Limit > 0 {
		end = min(start+opts.Limit, end)
	}
	result.Tokens = matches[start:end]
	return result, nil
}

// Stats aggregates counts over the global token space.
func (r *Registry) Stats() *Stats {
	merged, overwritten := r.parseScope(source.Global)

	stats := &Stats{
		Total:       len(merged),
		BySource:    map[string]int{},
		ByCategory:  map[string]int{},
		ByPrefix:    map[string]int{},
		Overwritten: overwritten,
	}
	for _, rec := range merged {
		stats.BySource[rec.SourceFile]++
		stats.ByCategory[rec.Category]++
		stats.ByPrefix[namePrefix(rec.Name)]++
	}
	return stats
}

// ComponentTokens re-parses the component's declaring source and
// returns its records enriched with naming-grammar semantics and value
// classification, sorted by name.
func (r *Registry) ComponentTokens(slug string) ([]*token.ComponentRecord, error) {
	if slug == "" {
		return nil, &BadRequestError{Message: "component slug is required"}
	}

	entry, ok := r.catalog.Get(slug)
	if !ok {
		return nil, &NotFoundError{
			Kind:        "component",
			Name:        slug,
			Suggestions: NearestNames(slug, r.catalog.Slugs(), 3),
		}
	}

	data, err := r.provider.Read(entry.Path)
	if err != nil {
		logger.Warn("skipping %s: %v", entry.Path, err)
		return nil, nil
	}

	records := r.parser.Parse(data, parser.Options{SourceFile: entry.Path, Category: entry.Category})

	enriched := make([]*token.ComponentRecord, 0, len(records))
	for _, rec := range records {
		parts := token.Decompose(rec.Name, slug)
		classification := r.classifier.Classify(rec.Value)
		enriched = append(enriched, &token.ComponentRecord{
			Record:          *rec,
			Component:       slug,
			Element:         parts.Element,
			Variant:         parts.Variant,
			State:           parts.State,
			CSSProperty:     parts.CSSProperty,
			ValueType:       classification.ValueType,
			ReferencedToken: classification.ReferencedToken,
		})
	}
	sort.Slice(enriched, func(i, j int) bool {
		return enriched[i].Name < enriched[j].Name
	})
	return enriched, nil
}

// ByElement returns the component's tokens scoped to a sub-element.
func (r *Registry) ByElement(slug, element string) ([]*token.ComponentRecord, error) {
	return r.filterComponent(slug, func(rec *token.ComponentRecord) bool {
		return rec.Element == element
	})
}

// ByProperty returns the component's tokens for one CSS property.
func (r *Registry) ByProperty(slug, property string) ([]*token.ComponentRecord, error) {
	return r.filterComponent(slug, func(rec *token.ComponentRecord) bool {
		return rec.CSSProperty == property
	})
}

// WithState returns the component's tokens that declare any
// interaction state.
func (r *Registry) WithState(slug string) ([]*token.ComponentRecord, error) {
	return r.filterComponent(slug, (*token.ComponentRecord).HasState)
}

func (r *Registry) filterComponent(slug string, keep func(*token.ComponentRecord) bool) ([]*token.ComponentRecord, error) {
	records, err := r.ComponentTokens(slug)
	if err != nil {
		return nil, err
	}
	var filtered []*token.ComponentRecord
	for _, rec := range records {
		if keep(rec) {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// parseScope parses every source in scope into one merged map.
// A source that fails to list or read yields zero tokens and a logged
// diagnostic; the registry degrades rather than fails.
func (r *Registry) parseScope(scope source.Scope) (map[string]*token.Record, int) {
	merged := make(map[string]*token.Record)
	overwritten := 0

	sources, err := r.provider.List(scope)
	if err != nil {
		logger.Warn("listing %s sources: %v", scope, err)
		return merged, 0
	}

	for _, src := range sources {
		data, err := r.provider.Read(src.ID)
		if err != nil {
			logger.Warn("skipping %s: %v", src.ID, err)
			continue
		}
		records := r.parser.Parse(data, parser.Options{SourceFile: src.ID, Category: src.Category})
		for name, rec := range records {
			if _, exists := merged[name]; exists {
				overwritten++
			}
			merged[name] = rec
		}
	}
	return merged, overwritten
}

// union merges the global space with every component source.
func (r *Registry) union() map[string]*token.Record {
	merged, _ := r.parseScope(source.Global)
	components, _ := r.parseScope(source.Components)
	for name, rec := range components {
		merged[name] = rec
	}
	return merged
}

func matchRecord(rec *token.Record, needle string, scope SearchScope) bool {
	switch scope {
	case ScopeName:
		return strings.Contains(strings.ToLower(rec.Name), needle)
	case ScopeValue:
		return strings.Contains(strings.ToLower(rec.Value), needle)
	default:
		return strings.Contains(strings.ToLower(rec.Name), needle) ||
			strings.Contains(strings.ToLower(rec.Value), needle) ||
			strings.Contains(strings.ToLower(rec.Comment), needle)
	}
}

// namePrefix returns the leading "--ns-word" run of a token name, the
// grouping key for prefix statistics.
func namePrefix(name string) string {
	body := strings.TrimPrefix(name, "--")
	segments := strings.SplitN(body, "-", 3)
	if len(segments) < 2 {
		return name
	}
	return "--" + segments[0] + "-" + segments[1]
}

func sortedRecords(records map[string]*token.Record) []*token.Record {
	sorted := make([]*token.Record, 0, len(records))
	for _, rec := range records {
		sorted = append(sorted, rec)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}
