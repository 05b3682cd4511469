/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package intent

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"bennypowers.dev/shomer/registry"
	"bennypowers.dev/shomer/rules"
)

// Engine evaluates token usages against the registry and the loaded
// design rules. It holds no mutable state of its own, so one engine is
// safe for concurrent use.
type Engine struct {
	registry *registry.Registry
	store    *rules.Store

	// Matcher matches caller-described design contexts against rule
	// context names. Defaults to StemMatcher.
	Matcher ContextMatcher
}

// NewEngine creates an engine over the given registry and rule store.
func NewEngine(reg *registry.Registry, store *rules.Store) *Engine {
	return &Engine{registry: reg, store: store, Matcher: StemMatcher{}}
}

// Usage describes one token or raw value applied to a CSS property.
type Usage struct {
	// Token is the custom property name being used, if any.
	Token string `json:"token,omitempty"`

	// Value is the raw CSS value when no token reference is used. A
	// var() expression here is normalized to its referenced token.
	Value string `json:"value,omitempty"`

	// CSSProperty is the property the value is applied to.
	CSSProperty string `json:"cssProperty"`

	// Element describes where the usage appears ("hero heading").
	Element string `json:"element,omitempty"`
}

// BatchResult is the outcome of validating a set of usages together.
type BatchResult struct {
	Violations []Violation `json:"violations"`
	Summary    Summary     `json:"summary"`
}

// ValidateUsage checks one usage against every applicable rule.
// Checks short-circuit: a hardcoded value or a phantom token reference
// is reported alone, since downstream checks would only compound the
// noise.
func (e *Engine) ValidateUsage(usage Usage, designContext string) ([]Violation, error) {
	if usage.CSSProperty == "" {
		return nil, &registry.BadRequestError{Message: "cssProperty is required"}
	}
	if usage.Token == "" && usage.Value == "" {
		return nil, &registry.BadRequestError{Message: "a token or a value is required"}
	}

	usage = e.normalize(usage)

	if usage.Token == "" {
		if v, ok := e.hardcodedViolation(usage.CSSProperty, usage.Value); ok {
			return []Violation{v}, nil
		}
		return nil, nil
	}

	if !e.registry.Exists(usage.Token) {
		return []Violation{e.phantomViolation(usage.Token, usage.Token)}, nil
	}

	var violations []Violation
	if v, ok := primitiveViolation(usage.Token); ok {
		violations = append(violations, v)
	}
	violations = append(violations, e.hierarchyViolations(usage, designContext)...)
	return violations, nil
}

// ValidateBatch checks usages individually, then applies the
// cross-usage typography consistency check, and tallies a summary.
func (e *Engine) ValidateBatch(designContext string, usages []Usage) (*BatchResult, error) {
	if len(usages) == 0 {
		return nil, &registry.BadRequestError{Message: "at least one usage is required"}
	}

	result := &BatchResult{}
	for _, usage := range usages {
		violations, err := e.ValidateUsage(usage, designContext)
		if err != nil {
			return nil, err
		}
		if len(violations) == 0 {
			result.Summary.Clean++
		}
		result.Violations = append(result.Violations, violations...)
	}

	result.Violations = append(result.Violations, e.typographyViolations(usages)...)

	sortViolations(result.Violations)
	for _, v := range result.Violations {
		result.Summary.count(v.Severity)
	}
	return result, nil
}

// normalize folds a var() value into its referenced token so that
// "var(--ks-color-text)" and a bare token name validate identically.
func (e *Engine) normalize(usage Usage) Usage {
	if usage.Token == "" && strings.Contains(usage.Value, "var(") {
		if c := e.registry.Classifier().Classify(usage.Value); c.ReferencedToken != "" {
			usage.Token = c.ReferencedToken
		}
	}
	return usage
}

func (e *Engine) phantomViolation(subject, referenced string) Violation {
	v := Violation{
		Severity: rules.Critical,
		RuleID:   RuleTokenExistence,
		RuleName: "Token existence",
		Token:    subject,
		Message:  fmt.Sprintf("%s is not declared by any known source", referenced),
	}
	if _, err := e.registry.Get(referenced); err != nil {
		var notFound *registry.NotFoundError
		if errors.As(err, &notFound) && len(notFound.Suggestions) > 0 {
			v.Suggestion = "did you mean " + strings.Join(notFound.Suggestions, ", ") + "?"
		}
	}
	return v
}

// propertyCategory maps a CSS property onto the rule category that
// governs it, or "" when no hierarchy rules apply.
func propertyCategory(property string) string {
	switch property {
	case "color", "text-color", "caret-color":
		return "text-color"
	case "background", "background-color":
		return "background-color"
	case "font-family":
		return "font-family"
	}
	return ""
}

// stateSuffixes are modifier suffixes stripped before rule lookup so
// "--ks-color-text-hover" resolves against the "--ks-color-text" entry.
var stateSuffixes = []string{
	"-hover", "-active", "-focus", "-checked",
	"-selected", "-disabled", "-open", "-interactive", "-inverted",
}

// BaseToken strips interaction-state and inversion suffixes from a
// token name, yielding the name rule documents govern.
func BaseToken(name string) string {
	for {
		stripped := false
		for _, suffix := range stateSuffixes {
			if strings.HasSuffix(name, suffix) && len(name) > len(suffix) {
				name = strings.TrimSuffix(name, suffix)
				stripped = true
			}
		}
		if !stripped {
			return name
		}
	}
}

// hierarchyViolations checks the usage against every rule governing
// the property's category. Background-color mismatches degrade to
// info, since backgrounds legitimately vary more than text.
func (e *Engine) hierarchyViolations(usage Usage, designContext string) []Violation {
	category := propertyCategory(usage.CSSProperty)
	if category == "" {
		return nil
	}
	context := strings.TrimSpace(usage.Element + " " + designContext)
	if context == "" {
		return nil
	}

	base := BaseToken(usage.Token)
	var violations []Violation
	for _, rule := range e.store.ByCategory(category) {
		guidance, ok := rule.Guidance(base)
		if !ok {
			continue
		}
		for _, invalid := range guidance.InvalidContexts {
			if !e.Matcher.Match(context, invalid) {
				continue
			}
			severity := rule.Severity
			if category == "background-color" {
				severity = rules.Info
			}
			v := Violation{
				Severity:  severity,
				RuleID:    rule.ID,
				RuleName:  rule.Name,
				Token:     usage.Token,
				Message:   fmt.Sprintf("%s is not intended for %s contexts", usage.Token, invalid),
				Rationale: guidance.Rationale,
			}
			if alternative := e.alternativeFor(rule, context, base); alternative != "" {
				v.Suggestion = "use " + alternative
			}
			violations = append(violations, v)
			break
		}
	}
	return violations
}

// alternativeFor finds a sibling token in the same rule whose valid
// contexts match the caller's context.
func (e *Engine) alternativeFor(rule *rules.Rule, context, exclude string) string {
	for _, guidance := range rule.Tokens {
		if guidance.Token == exclude {
			continue
		}
		for _, valid := range guidance.ValidContexts {
			if e.Matcher.Match(context, valid) {
				return guidance.Token
			}
		}
	}
	return ""
}

var typographyProperties = map[string]bool{
	"font-size":   true,
	"line-height": true,
	"font-family": true,
}

// typographyCategory buckets a typography token name by the scale
// family its name encodes.
func typographyCategory(name string) string {
	switch {
	case strings.Contains(name, "display"):
		return "display"
	case strings.Contains(name, "copy"), strings.Contains(name, "body"):
		return "copy"
	case strings.Contains(name, "interface"), strings.Contains(name, "-ui-"):
		return "interface"
	case strings.Contains(name, "mono"), strings.Contains(name, "code"):
		return "mono"
	}
	return ""
}

// typographyViolations flags elements that mix typography scale
// families, like a display font-size with a copy line-height.
func (e *Engine) typographyViolations(usages []Usage) []Violation {
	type elementMix struct {
		categories map[string]bool
		tokens     []string
	}
	byElement := map[string]*elementMix{}

	for _, usage := range usages {
		usage = e.normalize(usage)
		if usage.Token == "" || !typographyProperties[usage.CSSProperty] {
			continue
		}
		category := typographyCategory(usage.Token)
		if category == "" {
			continue
		}
		mix := byElement[usage.Element]
		if mix == nil {
			mix = &elementMix{categories: map[string]bool{}}
			byElement[usage.Element] = mix
		}
		mix.categories[category] = true
		mix.tokens = append(mix.tokens, usage.Token)
	}

	elements := make([]string, 0, len(byElement))
	for element := range byElement {
		elements = append(elements, element)
	}
	sort.Strings(elements)

	var violations []Violation
	for _, element := range elements {
		mix := byElement[element]
		if len(mix.categories) < 2 {
			continue
		}
		categories := make([]string, 0, len(mix.categories))
		for category := range mix.categories {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		label := element
		if label == "" {
			label = "element"
		}
		violations = append(violations, Violation{
			Severity:   rules.Warning,
			RuleID:     RuleTypographyConsistency,
			RuleName:   "Typography consistency",
			Token:      mix.tokens[0],
			Message:    fmt.Sprintf("%s mixes typography families: %s", label, strings.Join(categories, ", ")),
			Suggestion: "keep font-size, line-height, and font-family within one typography family per element",
		})
	}
	return violations
}
