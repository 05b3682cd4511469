/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package intent

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/shomer/rules"
)

// colorProperties take color tokens, never raw color literals.
var colorProperties = map[string]bool{
	"color":            true,
	"background":       true,
	"background-color": true,
	"border-color":     true,
	"outline-color":    true,
	"fill":             true,
	"stroke":           true,
}

// spacingProperties take scale tokens, never fixed lengths.
var spacingProperties = map[string]bool{
	"gap":           true,
	"row-gap":       true,
	"column-gap":    true,
	"border-radius": true,
}

var (
	hexColorPattern  = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)
	colorFuncPattern = regexp.MustCompile(`^(?:rgb|rgba|hsl|hsla|oklch|color)\(`)
	fixedUnitPattern = regexp.MustCompile(`^-?\d+(?:\.\d+)?(?:px|rem|em)$`)
	bareWeightRange  = regexp.MustCompile(`^[1-9]00$`)
)

func spacingProperty(p string) bool {
	return spacingProperties[p] ||
		strings.HasPrefix(p, "padding") ||
		strings.HasPrefix(p, "margin") ||
		strings.HasPrefix(p, "inset")
}

func isColorLiteral(value string) bool {
	if !hexColorPattern.MatchString(value) && !colorFuncPattern.MatchString(value) {
		return false
	}
	_, err := csscolorparser.Parse(value)
	return err == nil
}

// hardcodedViolation reports a raw value that should have been a token
// reference. Values that already reference a custom property pass.
func (e *Engine) hardcodedViolation(property, value string) (Violation, bool) {
	value = strings.TrimSpace(value)
	if value == "" || strings.Contains(value, "var(") {
		return Violation{}, false
	}

	var message, suggestion string
	switch {
	case colorProperties[property] && isColorLiteral(value):
		message = fmt.Sprintf("hardcoded %s value %q should reference a color token", property, value)
		suggestion = e.nearestColorToken(value)

	case spacingProperty(property) && fixedUnitPattern.MatchString(value):
		message = fmt.Sprintf("hardcoded %s value %q should reference a spacing token", property, value)
		suggestion = "use a spacing scale token"

	case property == "font-weight" && bareWeightRange.MatchString(value):
		message = fmt.Sprintf("hardcoded font-weight %q should reference a weight token", value)
		suggestion = "use a font-weight token"

	case (property == "box-shadow" || property == "text-shadow") && value != "none":
		message = fmt.Sprintf("hardcoded %s should reference an elevation token", property)
		suggestion = "use a box-shadow token"

	default:
		return Violation{}, false
	}

	return Violation{
		Severity:   rules.Critical,
		RuleID:     RuleHardcodedValue,
		RuleName:   "Hardcoded value",
		Token:      value,
		Message:    message,
		Suggestion: suggestion,
	}, true
}

// nearestColorToken finds the global color token whose value is
// perceptually closest to the literal, compared in Lab space.
func (e *Engine) nearestColorToken(value string) string {
	target, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	targetLab := colorful.Color{R: target.R, G: target.G, B: target.B}

	var bestName, bestValue string
	bestDistance := math.MaxFloat64

	for _, rec := range e.registry.Globals() {
		if !strings.Contains(rec.Name, "color") {
			continue
		}
		parsed, err := csscolorparser.Parse(rec.Value)
		if err != nil {
			continue
		}
		distance := targetLab.DistanceLab(colorful.Color{R: parsed.R, G: parsed.G, B: parsed.B})
		if distance < bestDistance {
			bestName, bestValue, bestDistance = rec.Name, rec.Value, distance
		}
	}

	if bestName == "" {
		return ""
	}
	return fmt.Sprintf("use var(%s) (%s)", bestName, bestValue)
}

// primitivePatterns match raw palette tokens that components should
// reach through semantic tokens instead.
var primitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^--[a-z0-9]+-color-[a-z]+-\d+$`),
	regexp.MustCompile(`^--[a-z0-9]+-color-(?:white|black)$`),
	regexp.MustCompile(`^--[a-z0-9]+-palette-[a-z0-9-]+$`),
}

func primitiveViolation(name string) (Violation, bool) {
	for _, pattern := range primitivePatterns {
		if pattern.MatchString(name) {
			return Violation{
				Severity:   rules.Warning,
				RuleID:     RulePrimitiveToken,
				RuleName:   "Primitive palette token",
				Token:      name,
				Message:    fmt.Sprintf("%s is a primitive palette token", name),
				Suggestion: "use a semantic text, background, or border token instead",
			}, true
		}
	}
	return Violation{}, false
}
