/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package rules provides declarative design-intent rule documents and
// a process-lifetime store for them.
package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Severity classifies how serious a violation of a rule is.
type Severity string

const (
	// Critical violations break the design system contract.
	Critical Severity = "critical"

	// Warning violations are likely mistakes worth reviewing.
	Warning Severity = "warning"

	// Info violations are advisory.
	Info Severity = "info"
)

// Rank returns the sort weight of a severity; critical sorts first.
func (s Severity) Rank() int {
	switch s {
	case Critical:
		return 0
	case Warning:
		return 1
	default:
		return 2
	}
}

// AtLeast reports whether s is at least as severe as minimum.
func (s Severity) AtLeast(minimum Severity) bool {
	return s.Rank() <= minimum.Rank()
}

// ParseSeverity parses a severity string; empty defaults to Info.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "", string(Info):
		return Info, nil
	case string(Warning):
		return Warning, nil
	case string(Critical):
		return Critical, nil
	default:
		return "", fmt.Errorf("invalid severity %q: expected critical, warning, or info", s)
	}
}

// Kind tags the two rule document shapes.
type Kind string

const (
	// TokenMap rules govern a set of tokens keyed by identifier.
	TokenMap Kind = "tokenMap"

	// Scale rules govern an ordered scale of tokens.
	Scale Kind = "scale"
)

// Guidance describes how one governed token should be used.
type Guidance struct {
	// Token is the governed token identifier.
	Token string `json:"token"`

	// Role is the design role ("display", "copy", "interface").
	Role string `json:"role,omitempty"`

	// Level is the scale position for scale rules.
	Level int `json:"level,omitempty"`

	// Label is a human label for scale entries.
	Label string `json:"label,omitempty"`

	// Purpose describes what the token is for.
	Purpose string `json:"purpose,omitempty"`

	// ValidContexts are design contexts this token belongs in.
	ValidContexts []string `json:"validContexts,omitempty"`

	// InvalidContexts are design contexts this token must not appear in.
	InvalidContexts []string `json:"invalidContexts,omitempty"`

	// Rationale explains the guidance to humans.
	Rationale string `json:"rationale,omitempty"`
}

// Pairing lists companion tokens expected alongside a governed token,
// keyed by CSS property ("font-family" -> "--ks-font-family-display").
type Pairing map[string]string

// Rule is one declarative design-intent document. The two document
// shapes (a tokens map or an ordered scale) are decoded into the same
// ordered Tokens slice, tagged by Kind.
type Rule struct {
	// ID uniquely identifies the rule ("text-color-hierarchy").
	ID string `json:"id"`

	// Name is the human rule name.
	Name string `json:"name"`

	// Severity is the default severity for violations of this rule.
	Severity Severity `json:"severity"`

	// Category binds the rule to a property family ("text-color").
	Category string `json:"category"`

	// Kind tags which document shape this rule was loaded from.
	Kind Kind `json:"kind"`

	// Tokens is the governed set in document order. For TokenMap rules
	// the order is the key order of the source document; rank in
	// recommendations is this insertion order.
	Tokens []Guidance `json:"tokens"`

	// PairingRules maps a governed token to its expected companions.
	PairingRules map[string]Pairing `json:"pairingRules,omitempty"`
}

// Guidance returns the guidance entry for a token identifier.
func (r *Rule) Guidance(tok string) (*Guidance, bool) {
	for i := range r.Tokens {
		if r.Tokens[i].Token == tok {
			return &r.Tokens[i], true
		}
	}
	return nil, false
}

// rawRule mirrors the document shapes for decoding.
type rawRule struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Severity     Severity           `json:"severity"`
	Category     string             `json:"category"`
	Tokens       json.RawMessage    `json:"tokens"`
	Scale        []Guidance         `json:"scale"`
	PairingRules map[string]Pairing `json:"pairingRules"`
}

// UnmarshalJSON decodes either document shape. A document must carry
// exactly one of "tokens" (object keyed by identifier) or "scale"
// (ordered array).
func (r *Rule) UnmarshalJSON(data []byte) error {
	var raw rawRule
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.ID = raw.ID
	r.Name = raw.Name
	r.Severity = raw.Severity
	r.Category = raw.Category
	r.PairingRules = raw.PairingRules

	hasTokens := len(raw.Tokens) > 0 && !bytes.Equal(raw.Tokens, []byte("null"))
	hasScale := len(raw.Scale) > 0

	switch {
	case hasTokens && hasScale:
		return fmt.Errorf("rule %q: tokens and scale are mutually exclusive", raw.ID)
	case hasTokens:
		tokens, err := decodeOrderedTokens(raw.Tokens)
		if err != nil {
			return fmt.Errorf("rule %q: %w", raw.ID, err)
		}
		r.Kind = TokenMap
		r.Tokens = tokens
	case hasScale:
		r.Kind = Scale
		r.Tokens = raw.Scale
	default:
		return fmt.Errorf("rule %q: missing tokens or scale", raw.ID)
	}

	if r.Severity == "" {
		r.Severity = Warning
	}
	return nil
}

// decodeOrderedTokens decodes a tokens object preserving document key
// order, which encoding/json map decoding would lose.
func decodeOrderedTokens(raw json.RawMessage) ([]Guidance, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("tokens must be an object keyed by identifier")
	}

	var tokens []Guidance
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("tokens object has non-string key %v", keyTok)
		}

		var g Guidance
		if err := dec.Decode(&g); err != nil {
			return nil, fmt.Errorf("token %q: %w", key, err)
		}
		g.Token = key
		tokens = append(tokens, g)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return tokens, nil
}
