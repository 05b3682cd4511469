/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rules

import (
	"encoding/json"
	"sync"

	"github.com/tidwall/jsonc"

	"bennypowers.dev/shomer/internal/logger"
	"bennypowers.dev/shomer/source"
)

// Store loads design rule documents and memoizes them for the process
// lifetime. The cache is write-once-then-read-only, so it is safe to
// share without locking beyond the initial load; a reload requires a
// process restart.
type Store struct {
	provider source.Provider
	once     sync.Once
	rules    []*Rule
}

// NewStore creates a store over the given provider.
func NewStore(provider source.Provider) *Store {
	return &Store{provider: provider}
}

// Load returns all parsed rules, reading sources on first call only.
// An absent rule source yields an empty set; a document that fails to
// parse is skipped with a diagnostic, never fatal.
func (s *Store) Load() []*Rule {
	s.once.Do(func() {
		sources, err := s.provider.List(source.Rules)
		if err != nil {
			logger.Warn("listing rule sources: %v", err)
			return
		}

		for _, src := range sources {
			data, err := s.provider.Read(src.ID)
			if err != nil {
				logger.Warn("skipping rule %s: %v", src.ID, err)
				continue
			}

			// Rule documents are comment-tolerant JSON.
			rule := &Rule{}
			if err := json.Unmarshal(jsonc.ToJSON(data), rule); err != nil {
				logger.Warn("skipping rule %s: %v", src.ID, err)
				continue
			}
			s.rules = append(s.rules, rule)
		}
	})
	return s.rules
}

// ByID returns the rule with the given id.
func (s *Store) ByID(id string) (*Rule, bool) {
	for _, rule := range s.Load() {
		if rule.ID == id {
			return rule, true
		}
	}
	return nil, false
}

// ByCategory returns the rules bound to a property family.
func (s *Store) ByCategory(category string) []*Rule {
	var matched []*Rule
	for _, rule := range s.Load() {
		if rule.Category == category {
			matched = append(matched, rule)
		}
	}
	return matched
}

// IDs returns every loaded rule id.
func (s *Store) IDs() []string {
	rules := s.Load()
	ids := make([]string, 0, len(rules))
	for _, rule := range rules {
		ids = append(ids, rule.ID)
	}
	return ids
}
