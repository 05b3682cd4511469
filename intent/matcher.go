/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package intent

import "strings"

// ContextMatcher decides whether a caller-described design context
// matches a context name from a rule document. The interface exists so
// the matching heuristic can be swapped without touching rule
// evaluation.
type ContextMatcher interface {
	// Match reports whether context matches the rule's candidate
	// context name.
	Match(context, candidate string) bool
}

// StemMatcher matches contexts by overlap of lightly stemmed words:
// "hero section" matches "heroes" and "sections". It is the default
// matcher.
type StemMatcher struct{}

// Match implements ContextMatcher.
func (StemMatcher) Match(context, candidate string) bool {
	contextStems := map[string]bool{}
	for _, w := range contextWords(context) {
		contextStems[stem(w)] = true
	}
	if len(contextStems) == 0 {
		return false
	}
	for _, w := range contextWords(candidate) {
		if contextStems[stem(w)] {
			return true
		}
	}
	return false
}

func contextWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		switch r {
		case ' ', '\t', '-', '_', '/', ',':
			return true
		}
		return false
	})
}

// stem strips plural "s" and gerund "ing" suffixes. Words ending in
// "line" keep their trailing sequence so "headline" and "headlines"
// collapse to the same stem without colliding with "head".
func stem(w string) string {
	for {
		switch {
		case strings.HasSuffix(w, "lines"):
			return strings.TrimSuffix(w, "s")
		case strings.HasSuffix(w, "line"):
			return w
		case strings.HasSuffix(w, "ing") && len(w) > 4:
			w = w[:len(w)-3]
		case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && len(w) > 3:
			w = w[:len(w)-1]
		default:
			return w
		}
	}
}
