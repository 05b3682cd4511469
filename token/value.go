/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

// DefaultComponentPrefixes mark referenced identifiers as component or
// layout scoped when no prefixes are configured.
var DefaultComponentPrefixes = []string{"--dsa-", "--l-"}

// varRefPattern matches any var() invocation and captures the
// referenced identifier.
var varRefPattern = regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)`)

// soleVarPattern matches a value that is exactly one var() invocation,
// optionally with a fallback argument.
var soleVarPattern = regexp.MustCompile(`^var\(\s*(--[A-Za-z0-9_-]+)\s*(?:,.*)?\)$`)

// Classification describes how a token's raw value is expressed.
type Classification struct {
	// ValueType is one of literal, global-reference,
	// component-reference, or calculated.
	ValueType ValueType `json:"valueType"`

	// ReferencedToken is the identifier of the referenced token.
	// Empty iff ValueType is Literal.
	ReferencedToken string `json:"referencedToken,omitempty"`
}

// Classifier categorizes raw token values. Classification is purely
// structural on the text; numeric and format semantics are not
// interpreted.
type Classifier struct {
	// ComponentPrefixes mark a referenced identifier as component
	// scoped. Defaults to DefaultComponentPrefixes when empty.
	ComponentPrefixes []string
}

// Classify categorizes value and extracts any referenced identifier.
// Every value produces exactly one ValueType.
func (c *Classifier) Classify(value string) Classification {
	value = strings.TrimSpace(value)
	hasVar := strings.Contains(value, "var(")

	if hasVar && strings.Contains(value, "calc(") {
		if ref := firstReference(value); ref != "" {
			return Classification{ValueType: Calculated, ReferencedToken: ref}
		}
	}

	if m := soleVarPattern.FindStringSubmatch(value); m != nil {
		return Classification{ValueType: c.referenceScope(m[1]), ReferencedToken: m[1]}
	}

	// Shorthand values combining literals and references still count
	// as references, classified by the first reference found.
	if hasVar {
		if ref := firstReference(value); ref != "" {
			return Classification{ValueType: c.referenceScope(ref), ReferencedToken: ref}
		}
	}

	return Classification{ValueType: Literal}
}

// referenceScope distinguishes component-scoped references from global
// ones by the referenced identifier's prefix.
func (c *Classifier) referenceScope(ref string) ValueType {
	prefixes := c.ComponentPrefixes
	if len(prefixes) == 0 {
		prefixes = DefaultComponentPrefixes
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(ref, prefix) {
			return ComponentReference
		}
	}
	return GlobalReference
}

// firstReference returns the identifier inside the first var()
// invocation in value, or "" if none is recoverable.
func firstReference(value string) string {
	if m := varRefPattern.FindStringSubmatch(value); m != nil {
		return m[1]
	}
	return ""
}
