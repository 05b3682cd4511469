/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package intent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/shomer/config"
	"bennypowers.dev/shomer/intent"
	"bennypowers.dev/shomer/registry"
	"bennypowers.dev/shomer/rules"
	"bennypowers.dev/shomer/source"
	"bennypowers.dev/shomer/testutil"
)

const textColorRule = `{
	// governs semantic text colors
	"id": "text-color-hierarchy",
	"name": "Text color hierarchy",
	"severity": "warning",
	"category": "text-color",
	"tokens": {
		"--ks-color-text-display": {
			"role": "display",
			"purpose": "Hero and display headlines",
			"validContexts": ["hero", "headline", "display"],
			"invalidContexts": ["body copy", "caption"],
			"rationale": "Display text color carries the strongest contrast."
		},
		"--ks-color-text": {
			"role": "copy",
			"validContexts": ["body copy", "paragraph"],
			"invalidContexts": ["hero", "headline"],
			"rationale": "Copy color is tuned for long-form reading."
		},
		"--ks-color-text-interface": {
			"role": "interface",
			"validContexts": ["button", "label", "control"],
			"invalidContexts": ["hero", "headline"]
		}
	},
	"pairingRules": {
		"--ks-color-text-display": {"font-family": "--ks-font-family-display"}
	}
}`

func newTestEngine(t *testing.T) *intent.Engine {
	t.Helper()

	mfs := testutil.NewProjectFS(t, "project", map[string]string{
		"tokens/color/color.css": `
--ks-color-text-display: #101820;
--ks-color-text: #333333;
--ks-color-text-interface: #222222;
--ks-color-text-inverted: #ffffff;
--ks-color-red-50: #e02020;
--ks-color-blue-60: #0066cc;
--ks-background-page: #fafafa;
`,
		"tokens/type/type.css": `
--ks-font-family-display: "Inter Display", sans-serif;
--ks-font-size-display-l: 3rem;
--ks-font-size-copy-m: 1rem;
--ks-line-height-copy-m: 1.5;
--ks-spacing-m: 1rem;
`,
		"components/button/button.css": `
--dsa-button--background-color: var(--ks-color-blue-60);
--dsa-button--background-color_hover: var(--ks-color-text);
--dsa-button--color: var(--ks-color-text-inverted);
--dsa-button_danger--background-color: var(--ks-color-missing);
--dsa-button--border-color: #00ff00;
`,
		".config/rules/text-color.json": textColorRule,
	})

	cfg := config.Default()
	cfg.Tokens = []config.FileSpec{
		{Path: "tokens/color/color.css", Category: "color"},
		{Path: "tokens/type/type.css", Category: "typography"},
	}
	cfg.Components = []config.ComponentEntry{
		{Slug: "button", Path: "components/button/button.css", Category: "form"},
	}

	provider := source.NewFSProvider(mfs, "project", cfg)
	reg := registry.New(provider, provider.Catalog(), cfg)
	return intent.NewEngine(reg, rules.NewStore(provider))
}

func TestValidateHardcodedColor(t *testing.T) {
	engine := newTestEngine(t)

	violations, err := engine.ValidateUsage(intent.Usage{
		CSSProperty: "color",
		Value:       "#ff0000",
	}, "")
	require.NoError(t, err)
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, rules.Critical, v.Severity)
	assert.Equal(t, intent.RuleHardcodedValue, v.RuleID)
	assert.Contains(t, v.Suggestion, "--ks-color-red-50")
}

func TestValidateHardcodedValues(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name     string
		property string
		value    string
		flagged  bool
	}{
		{"fixed padding", "padding", "12px", true},
		{"fixed margin rem", "margin-top", "1.5rem", true},
		{"bare font weight", "font-weight", "700", true},
		{"raw shadow", "box-shadow", "0 2px 4px rgba(0,0,0,0.2)", true},
		{"shadow none passes", "box-shadow", "none", false},
		{"keyword passes", "color", "inherit", false},
		{"var passes", "padding", "var(--ks-spacing-m, 1rem)", false},
		{"calc with var passes", "padding", "calc(var(--ks-spacing-m) * 2)", false},
		{"display keyword not governed", "display", "flex", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations, err := engine.ValidateUsage(intent.Usage{
				CSSProperty: tt.property,
				Value:       tt.value,
			}, "")
			require.NoError(t, err)
			if tt.flagged {
				require.Len(t, violations, 1)
				assert.Equal(t, intent.RuleHardcodedValue, violations[0].RuleID)
			} else {
				assert.Empty(t, violations)
			}
		})
	}
}

func TestValidatePhantomToken(t *testing.T) {
	engine := newTestEngine(t)

	violations, err := engine.ValidateUsage(intent.Usage{
		Token:       "--ks-does-not-exist",
		CSSProperty: "color",
	}, "hero")
	require.NoError(t, err)

	// The existence check short-circuits all further rule checks.
	require.Len(t, violations, 1)
	assert.Equal(t, rules.Critical, violations[0].Severity)
	assert.Equal(t, intent.RuleTokenExistence, violations[0].RuleID)
}

func TestValidateHierarchy(t *testing.T) {
	engine := newTestEngine(t)

	violations, err := engine.ValidateUsage(intent.Usage{
		Token:       "--ks-color-text",
		CSSProperty: "color",
		Element:     "hero headline",
	}, "hero")
	require.NoError(t, err)
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, rules.Warning, v.Severity)
	assert.Equal(t, "text-color-hierarchy", v.RuleID)
	assert.Equal(t, "use --ks-color-text-display", v.Suggestion)
	assert.Equal(t, "Copy color is tuned for long-form reading.", v.Rationale)
}

func TestValidateHierarchyStripsStateSuffix(t *testing.T) {
	engine := newTestEngine(t)

	// Rule lookup resolves against the base name even though the
	// suffixed variant is what gets used.
	violations, err := engine.ValidateUsage(intent.Usage{
		Token:       "--ks-color-text-inverted",
		CSSProperty: "color",
		Element:     "hero headline",
	}, "")
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "text-color-hierarchy", violations[0].RuleID)
}

func TestValidateMatchingContextPasses(t *testing.T) {
	engine := newTestEngine(t)

	violations, err := engine.ValidateUsage(intent.Usage{
		Token:       "--ks-color-text-display",
		CSSProperty: "color",
		Element:     "hero headline",
	}, "hero")
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestValidateVarValueNormalized(t *testing.T) {
	engine := newTestEngine(t)

	// A var() value validates as the token it references.
	violations, err := engine.ValidateUsage(intent.Usage{
		Value:       "var(--ks-color-text)",
		CSSProperty: "color",
		Element:     "hero headline",
	}, "")
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "text-color-hierarchy", violations[0].RuleID)
}

func TestValidatePrimitiveToken(t *testing.T) {
	engine := newTestEngine(t)

	violations, err := engine.ValidateUsage(intent.Usage{
		Token:       "--ks-color-blue-60",
		CSSProperty: "color",
	}, "")
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, rules.Warning, violations[0].Severity)
	assert.Equal(t, intent.RulePrimitiveToken, violations[0].RuleID)
}

func TestValidateBadRequest(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.ValidateUsage(intent.Usage{Token: "--ks-color-text"}, "")
	var badRequest *registry.BadRequestError
	require.ErrorAs(t, err, &badRequest)

	_, err = engine.ValidateUsage(intent.Usage{CSSProperty: "color"}, "")
	require.ErrorAs(t, err, &badRequest)
}

func TestValidateBatch(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.ValidateBatch("article", []intent.Usage{
		{Token: "--ks-color-text", CSSProperty: "color", Element: "paragraph"},
		{Token: "--ks-font-size-display-l", CSSProperty: "font-size", Element: "intro"},
		{Token: "--ks-line-height-copy-m", CSSProperty: "line-height", Element: "intro"},
		{CSSProperty: "padding", Value: "24px"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Summary.Critical, "hardcoded padding")
	assert.Equal(t, 1, result.Summary.Warning, "mixed typography families on intro")
	assert.Equal(t, 3, result.Summary.Clean)

	var typography *intent.Violation
	for i := range result.Violations {
		if result.Violations[i].RuleID == intent.RuleTypographyConsistency {
			typography = &result.Violations[i]
		}
	}
	require.NotNil(t, typography)
	assert.Contains(t, typography.Message, "intro")
	assert.Contains(t, typography.Message, "copy")
	assert.Contains(t, typography.Message, "display")
}

func TestValidateBatchOrdersBySeverity(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.ValidateBatch("", []intent.Usage{
		{Token: "--ks-color-blue-60", CSSProperty: "color"},
		{CSSProperty: "color", Value: "#ff0000"},
	})
	require.NoError(t, err)
	require.Len(t, result.Violations, 2)
	assert.Equal(t, rules.Critical, result.Violations[0].Severity)
	assert.Equal(t, rules.Warning, result.Violations[1].Severity)
}

func TestBaseToken(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"--ks-color-text", "--ks-color-text"},
		{"--ks-color-text-hover", "--ks-color-text"},
		{"--ks-color-text-inverted-hover", "--ks-color-text"},
		{"--ks-color-interactive-active", "--ks-color"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, intent.BaseToken(tt.name), tt.name)
	}
}
