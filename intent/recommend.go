/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package intent

import (
	"fmt"
	"strings"

	"bennypowers.dev/shomer/registry"
	"bennypowers.dev/shomer/rules"
)

// RecommendOptions modify a recommendation query.
type RecommendOptions struct {
	// Interactive adds interaction-state companion tokens.
	Interactive bool

	// Inverted selects inverted-surface variants.
	Inverted bool
}

// Recommendation is one ranked token suggestion.
type Recommendation struct {
	// Token is the recommended token name.
	Token string `json:"token"`

	// Role and Label describe the token's place in its rule.
	Role  string `json:"role,omitempty"`
	Label string `json:"label,omitempty"`

	// Purpose describes what the token is for.
	Purpose string `json:"purpose,omitempty"`

	// Confidence is "high" for context matches, "low" for fallbacks.
	Confidence string `json:"confidence"`

	// Rank is the 1-based position in the rule's document order.
	Rank int `json:"rank"`

	// Rationale carries the rule's explanation.
	Rationale string `json:"rationale,omitempty"`

	// Pairings are companion tokens expected alongside this one.
	Pairings rules.Pairing `json:"pairings,omitempty"`

	// StateTokens are interaction-state companions, when requested.
	StateTokens []string `json:"stateTokens,omitempty"`
}

// Avoidance names a token ruled out for the described context.
type Avoidance struct {
	Token  string `json:"token"`
	Reason string `json:"reason"`
}

// RecommendResult is the outcome of a recommendation query.
type RecommendResult struct {
	Recommendations []Recommendation `json:"recommendations"`
	Avoid           []Avoidance      `json:"avoid,omitempty"`
}

// Recommend suggests tokens for a CSS property in a described design
// context. Candidates whose invalid contexts match go to the avoid
// list; candidates whose valid contexts match are recommended at high
// confidence. When nothing matches, the full remaining candidate set
// is returned at low confidence rather than an empty answer.
func (e *Engine) Recommend(cssProperty, element, designContext string, opts RecommendOptions) (*RecommendResult, error) {
	if cssProperty == "" {
		return nil, &registry.BadRequestError{Message: "cssProperty is required"}
	}
	context := strings.TrimSpace(element + " " + designContext)

	result := &RecommendResult{}
	avoided := map[string]bool{}

	applicable := e.rulesForProperty(cssProperty)
	for _, rule := range applicable {
		for i, guidance := range rule.Tokens {
			if reason, ruled := e.ruledOut(guidance, context); ruled {
				avoided[guidance.Token] = true
				result.Avoid = append(result.Avoid, Avoidance{Token: guidance.Token, Reason: reason})
				continue
			}
			if e.matchesAny(context, guidance.ValidContexts) {
				result.Recommendations = append(result.Recommendations,
					e.recommendation(rule, guidance, i, "high", opts))
			}
		}
	}

	if len(result.Recommendations) == 0 {
		for _, rule := range applicable {
			for i, guidance := range rule.Tokens {
				if avoided[guidance.Token] {
					continue
				}
				result.Recommendations = append(result.Recommendations,
					e.recommendation(rule, guidance, i, "low", opts))
			}
		}
	}
	return result, nil
}

func (e *Engine) ruledOut(guidance rules.Guidance, context string) (string, bool) {
	for _, invalid := range guidance.InvalidContexts {
		if e.Matcher.Match(context, invalid) {
			if guidance.Rationale != "" {
				return guidance.Rationale, true
			}
			return fmt.Sprintf("not intended for %s contexts", invalid), true
		}
	}
	return "", false
}

func (e *Engine) matchesAny(context string, candidates []string) bool {
	for _, candidate := range candidates {
		if e.Matcher.Match(context, candidate) {
			return true
		}
	}
	return false
}

func (e *Engine) recommendation(rule *rules.Rule, guidance rules.Guidance, index int, confidence string, opts RecommendOptions) Recommendation {
	name := guidance.Token
	if opts.Inverted && !strings.Contains(name, "-inverted") {
		name += "-inverted"
	}

	rec := Recommendation{
		Token:      name,
		Role:       guidance.Role,
		Label:      guidance.Label,
		Purpose:    guidance.Purpose,
		Confidence: confidence,
		Rank:       index + 1,
		Rationale:  guidance.Rationale,
	}
	if pairing, ok := rule.PairingRules[guidance.Token]; ok {
		rec.Pairings = pairing
	}
	if opts.Interactive {
		rec.StateTokens = []string{
			name + "-interactive",
			name + "-hover",
			name + "-active",
		}
	}
	return rec
}

// rulesForProperty gathers the rules whose category governs the
// property, including scale categories for size-like properties.
func (e *Engine) rulesForProperty(property string) []*rules.Rule {
	var matched []*rules.Rule
	for _, category := range categoriesForProperty(property) {
		matched = append(matched, e.store.ByCategory(category)...)
	}
	return matched
}

func categoriesForProperty(property string) []string {
	if category := propertyCategory(property); category != "" {
		return []string{category}
	}
	switch {
	case property == "font-size":
		return []string{"font-size", "typography-scale"}
	case property == "line-height":
		return []string{"line-height", "typography-scale"}
	case property == "font-weight":
		return []string{"font-weight"}
	case strings.Contains(property, "radius"):
		return []string{"radius"}
	case spacingProperty(property):
		return []string{"spacing"}
	case strings.Contains(property, "shadow"):
		return []string{"elevation"}
	}
	return []string{property}
}
