/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package registry

import (
	"fmt"
	"sort"
	"strings"
)

// NotFoundError reports an unknown token, component, or rule id. It is
// a structured caller-facing result, never a crash: it carries
// best-effort nearest-name suggestions.
type NotFoundError struct {
	// Kind names what was looked up: "token", "component", "rule".
	Kind string

	// Name is the identifier that did not resolve.
	Name string

	// Suggestions are nearest-name matches, best first.
	Suggestions []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("%s %q not found (did you mean %s?)", e.Kind, e.Name, strings.Join(e.Suggestions, ", "))
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// BadRequestError reports a malformed request (a missing required
// argument). It is surfaced before any I/O is attempted.
type BadRequestError struct {
	Message string
}

// Error implements the error interface.
func (e *BadRequestError) Error() string {
	return e.Message
}

// NearestNames ranks candidates by affinity to name and returns up to
// max suggestions. Affinity favors shared prefixes and substring
// containment; candidates with no affinity are dropped.
func NearestNames(name string, candidates []string, max int) []string {
	name = strings.ToLower(name)
	core := strings.Trim(name, "-")

	type scored struct {
		name  string
		score int
	}
	var ranked []scored

	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		score := commonPrefixLen(name, lower) * 2
		if core != "" && strings.Contains(lower, core) {
			score += len(core)
		}
		if score > 4 {
			ranked = append(ranked, scored{name: candidate, score: score})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].name < ranked[j].name
	})

	suggestions := make([]string, 0, max)
	for _, s := range ranked {
		if len(suggestions) == max {
			break
		}
		suggestions = append(suggestions, s.name)
	}
	return suggestions
}

func commonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
