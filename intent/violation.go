/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package intent evaluates token usages against declarative
// design-intent rules and produces severity-classified violations.
package intent

import (
	"sort"

	"bennypowers.dev/shomer/rules"
)

// Built-in rule ids for checks that need no rule document.
const (
	// RuleHardcodedValue flags raw literals that should be tokens.
	RuleHardcodedValue = "hardcoded-value"

	// RuleTokenExistence flags references to undeclared (phantom) tokens.
	RuleTokenExistence = "token-existence"

	// RulePrimitiveToken flags direct use of palette primitives.
	RulePrimitiveToken = "primitive-token"

	// RuleTypographyConsistency flags mixed typography categories on
	// one element.
	RuleTypographyConsistency = "typography-consistency"

	// RuleStateCompleteness flags interaction states declared on some
	// but not all matching tokens.
	RuleStateCompleteness = "state-completeness"
)

// Violation is one detected mismatch between a token usage and a
// design rule. Violations are returned to the caller, never persisted.
type Violation struct {
	// Severity classifies the violation.
	Severity rules.Severity `json:"severity"`

	// RuleID identifies the violated rule.
	RuleID string `json:"ruleId"`

	// RuleName is the human name of the violated rule.
	RuleName string `json:"ruleName"`

	// Token is the token (or raw value) the violation is about.
	Token string `json:"token"`

	// Message describes what is wrong.
	Message string `json:"message"`

	// Suggestion provides an actionable fix, if one is known.
	Suggestion string `json:"suggestion,omitempty"`

	// Rationale explains the design intent behind the rule.
	Rationale string `json:"rationale,omitempty"`
}

// Summary tallies violations per severity plus usages with zero
// violations.
type Summary struct {
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Info     int `json:"info"`
	Clean    int `json:"clean"`
}

func (s *Summary) count(severity rules.Severity) {
	switch severity {
	case rules.Critical:
		s.Critical++
	case rules.Warning:
		s.Warning++
	default:
		s.Info++
	}
}

// sortViolations orders critical first, then warnings, then info, with
// ties broken by token then rule id.
func sortViolations(violations []Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].Severity.Rank() != violations[j].Severity.Rank() {
			return violations[i].Severity.Rank() < violations[j].Severity.Rank()
		}
		if violations[i].Token != violations[j].Token {
			return violations[i].Token < violations[j].Token
		}
		return violations[i].RuleID < violations[j].RuleID
	})
}
