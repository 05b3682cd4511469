/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package intent

import (
	"fmt"
	"sort"
	"strings"

	"bennypowers.dev/shomer/internal/logger"
	"bennypowers.dev/shomer/rules"
	"bennypowers.dev/shomer/token"
)

// ComponentReport is the audit outcome for one component.
type ComponentReport struct {
	Component   string      `json:"component"`
	Category    string      `json:"category,omitempty"`
	Description string      `json:"description,omitempty"`
	TokenCount  int         `json:"tokenCount"`
	Violations  []Violation `json:"violations"`
	Summary     Summary     `json:"summary"`
}

// AuditRow is one component's line in an audit sweep.
type AuditRow struct {
	Component  string `json:"component"`
	Category   string `json:"category,omitempty"`
	TokenCount int    `json:"tokenCount"`
	Critical   int    `json:"critical"`
	Warning    int    `json:"warning"`
	Info       int    `json:"info"`
}

// AuditSummary is the outcome of auditing every cataloged component.
type AuditSummary struct {
	Components []AuditRow `json:"components"`
	Totals     Summary    `json:"totals"`
	TokenCount int        `json:"tokenCount"`
}

// AuditComponent checks every token a component declares: phantom
// references, primitive palette references, hardcoded literals, and
// interaction-state completeness.
func (e *Engine) AuditComponent(slug string) (*ComponentReport, error) {
	records, err := e.registry.ComponentTokens(slug)
	if err != nil {
		return nil, err
	}

	report := &ComponentReport{Component: slug, TokenCount: len(records)}
	if entry, ok := e.registry.Catalog().Get(slug); ok {
		report.Category = entry.Category
		report.Description = entry.Description
	}

	for _, rec := range records {
		switch {
		case rec.ReferencedToken != "":
			if !e.registry.Exists(rec.ReferencedToken) {
				v := e.phantomViolation(rec.Name, rec.ReferencedToken)
				v.Message = fmt.Sprintf("%s references %s, which is not declared by any known source", rec.Name, rec.ReferencedToken)
				report.Violations = append(report.Violations, v)
			} else if v, ok := primitiveViolation(rec.ReferencedToken); ok {
				v.Token = rec.Name
				v.Message = fmt.Sprintf("%s references primitive palette token %s", rec.Name, rec.ReferencedToken)
				report.Violations = append(report.Violations, v)
			}

		case rec.ValueType == token.Literal:
			if v, ok := e.hardcodedViolation(rec.CSSProperty, rec.Value); ok {
				v.Token = rec.Name
				report.Violations = append(report.Violations, v)
			}
		}
	}

	report.Violations = append(report.Violations, stateCompleteness(records)...)
	sortViolations(report.Violations)
	for _, v := range report.Violations {
		report.Summary.count(v.Severity)
	}
	return report, nil
}

// AuditAll audits every cataloged component, optionally filtered by
// catalog category, keeping only violations at or above minSeverity in
// the counts. A component whose source fails to read is skipped with a
// diagnostic rather than failing the sweep.
func (e *Engine) AuditAll(category string, minSeverity rules.Severity) (*AuditSummary, error) {
	if minSeverity == "" {
		minSeverity = rules.Info
	}

	summary := &AuditSummary{}
	for _, entry := range e.registry.Catalog().ByCategory(category) {
		report, err := e.AuditComponent(entry.Slug)
		if err != nil {
			logger.Warn("skipping %s: %v", entry.Slug, err)
			continue
		}

		row := AuditRow{
			Component:  entry.Slug,
			Category:   entry.Category,
			TokenCount: report.TokenCount,
		}
		for _, v := range report.Violations {
			if !v.Severity.AtLeast(minSeverity) {
				continue
			}
			switch v.Severity {
			case rules.Critical:
				row.Critical++
			case rules.Warning:
				row.Warning++
			default:
				row.Info++
			}
		}

		summary.Components = append(summary.Components, row)
		summary.Totals.Critical += row.Critical
		summary.Totals.Warning += row.Warning
		summary.Totals.Info += row.Info
		summary.TokenCount += row.TokenCount
	}
	return summary, nil
}

// requiredStates are the interaction states color-bearing token groups
// are expected to declare consistently across a component.
var requiredStates = []string{"hover", "active"}

func colorLikeProperty(property string) bool {
	return strings.Contains(property, "color") || property == "fill" || property == "stroke"
}

// stateCompleteness flags groups of color-bearing tokens that declare
// an interaction state on some variants but not others. A state that
// no group declares is not required; one that any group declares is
// expected everywhere.
func stateCompleteness(records []*token.ComponentRecord) []Violation {
	type groupKey struct {
		variant  string
		property string
	}
	type group struct {
		states   map[string]bool
		baseName string
	}

	groups := map[groupKey]*group{}
	for _, rec := range records {
		if !colorLikeProperty(rec.CSSProperty) {
			continue
		}
		key := groupKey{variant: rec.Variant, property: rec.CSSProperty}
		g := groups[key]
		if g == nil {
			g = &group{states: map[string]bool{}}
			groups[key] = g
		}
		if rec.State == "" {
			g.baseName = rec.Name
		} else {
			g.states[rec.State] = true
			if g.baseName == "" {
				g.baseName = rec.Name
			}
		}
	}

	var violations []Violation
	for _, state := range requiredStates {
		declared := 0
		for _, g := range groups {
			if g.states[state] {
				declared++
			}
		}
		if declared == 0 {
			continue
		}
		for key, g := range groups {
			if g.states[state] {
				continue
			}
			violations = append(violations, Violation{
				Severity: rules.Warning,
				RuleID:   RuleStateCompleteness,
				RuleName: "State completeness",
				Token:    g.baseName,
				Message: fmt.Sprintf("%s %s declares no %s state, but other %s tokens do",
					variantLabel(key.variant), key.property, state, key.property),
				Suggestion: fmt.Sprintf("declare a _%s token for %s", state, g.baseName),
			})
		}
	}
	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Token < violations[j].Token
	})
	return violations
}

func variantLabel(variant string) string {
	if variant == "" {
		return "default"
	}
	return variant
}
