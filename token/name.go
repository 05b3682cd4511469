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

// Parts holds the structured semantics recovered from a component token
// name by Decompose.
type Parts struct {
	// Element is the sub-element path, nested runs joined with ".".
	Element string

	// Variant is the single-underscore variant run, if any.
	Variant string

	// CSSProperty is the property segment, UnknownProperty if empty.
	CSSProperty string

	// State is the trailing interaction-state suffix, if any.
	State string
}

// InteractionStates is the closed set of recognized interaction-state
// suffixes. State extraction removes at most one suffix, and the state
// interpretation wins over a property word of the same spelling.
var InteractionStates = map[string]bool{
	"hover":    true,
	"active":   true,
	"focus":    true,
	"checked":  true,
	"selected": true,
	"disabled": true,
	"open":     true,
}

// namespacePattern matches the leading "--namespace-" run of a token name.
var namespacePattern = regexp.MustCompile(`^--[a-z0-9]+-`)

// genericComponentPattern matches a whole "--namespace-word(-word)*"
// segment, used as a fallback when the known component does not match.
// Hyphenated runs stop at "_" and "--" so the property segment survives.
var genericComponentPattern = regexp.MustCompile(`^--[a-z0-9]+(?:-[a-z0-9]+)*`)

// Decompose splits a component token name into its grammar parts:
//
//	--<ns>-<component>[__<element>]*[_<variant>]--<property>[_<state>]
//
// knownComponent is supplied by the caller because component slugs are
// themselves hyphenated and cannot be unambiguously separated from the
// rest of the identifier using the identifier alone.
func Decompose(name, knownComponent string) Parts {
	rest, ok := stripComponent(name, knownComponent)
	if !ok {
		if m := genericComponentPattern.FindString(name); m != "" {
			rest = name[len(m):]
		} else {
			rest = name
		}
	}

	// Everything after the last double dash is the property segment.
	structure, property := "", rest
	if i := strings.LastIndex(rest, "--"); i >= 0 {
		structure, property = rest[:i], rest[i+2:]
	} else {
		property = strings.TrimLeft(rest, "_")
	}

	parts := Parts{CSSProperty: UnknownProperty}

	if i := strings.LastIndex(property, "_"); i >= 0 && InteractionStates[property[i+1:]] {
		parts.State = property[i+1:]
		property = property[:i]
	}
	if property != "" {
		parts.CSSProperty = property
	}

	parts.Element, parts.Variant = splitStructure(structure)
	return parts
}

// Compose rebuilds a token name from its parts. It is the inverse of
// Decompose for grammar-conforming names.
func Compose(namespace, component string, parts Parts) string {
	var sb strings.Builder
	sb.WriteString("--")
	sb.WriteString(namespace)
	sb.WriteString("-")
	sb.WriteString(component)
	if parts.Element != "" {
		for el := range strings.SplitSeq(parts.Element, ".") {
			sb.WriteString("__")
			sb.WriteString(el)
		}
	}
	if parts.Variant != "" {
		sb.WriteString("_")
		sb.WriteString(parts.Variant)
	}
	sb.WriteString("--")
	sb.WriteString(parts.CSSProperty)
	if parts.State != "" {
		sb.WriteString("_")
		sb.WriteString(parts.State)
	}
	return sb.String()
}

// stripComponent removes the "--<ns>-<component>" prefix from name,
// trying the component slug as-is, hyphenated, and underscored, and
// taking the longest spelling that matches.
func stripComponent(name, slug string) (string, bool) {
	if slug == "" {
		return "", false
	}
	ns := namespacePattern.FindString(name)
	if ns == "" {
		return "", false
	}
	body := name[len(ns):]

	spellings := []string{
		slug,
		strings.ReplaceAll(slug, "-", "_"),
		strings.ReplaceAll(slug, "_", "-"),
	}
	best := ""
	for _, s := range spellings {
		if s != "" && strings.HasPrefix(body, s) && len(s) > len(best) {
			best = s
		}
	}
	if best == "" {
		return "", false
	}
	return body[len(best):], true
}

// splitStructure extracts elements and the variant from the structure
// segment. Double-underscore runs are elements (joined with "." to
// represent nesting); a single-underscore run is the variant.
func splitStructure(structure string) (element, variant string) {
	if structure == "" {
		return "", ""
	}

	chunks := strings.Split(structure, "__")

	// The run before the first double underscore can only be a variant
	// attached directly to the component.
	if head := strings.Trim(chunks[0], "_"); head != "" {
		variant = head
	}

	var elements []string
	for i, chunk := range chunks[1:] {
		if chunk == "" {
			continue
		}
		// Only the final run can carry a _variant suffix.
		if i == len(chunks)-2 {
			if el, v, found := strings.Cut(chunk, "_"); found {
				if el != "" {
					elements = append(elements, el)
				}
				if v != "" {
					variant = v
				}
				continue
			}
		}
		elements = append(elements, chunk)
	}
	return strings.Join(elements, "."), variant
}
