/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rules_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/shomer/rules"
)

func TestUnmarshalTokenMap(t *testing.T) {
	doc := `{
		"id": "text-color-hierarchy",
		"name": "Text color hierarchy",
		"severity": "critical",
		"category": "text-color",
		"tokens": {
			"--ks-color-text-display": {
				"role": "display",
				"validContexts": ["hero", "headline"],
				"invalidContexts": ["body copy"],
				"rationale": "Display color carries the strongest contrast."
			},
			"--ks-color-text": {
				"role": "copy",
				"validContexts": ["body copy"]
			},
			"--ks-color-text-interface": {
				"role": "interface"
			}
		},
		"pairingRules": {
			"--ks-color-text-display": {"font-family": "--ks-font-family-display"}
		}
	}`

	rule := &rules.Rule{}
	require.NoError(t, json.Unmarshal([]byte(doc), rule))

	assert.Equal(t, "text-color-hierarchy", rule.ID)
	assert.Equal(t, rules.Critical, rule.Severity)
	assert.Equal(t, rules.TokenMap, rule.Kind)

	// Document key order is the recommendation rank order.
	require.Len(t, rule.Tokens, 3)
	assert.Equal(t, "--ks-color-text-display", rule.Tokens[0].Token)
	assert.Equal(t, "--ks-color-text", rule.Tokens[1].Token)
	assert.Equal(t, "--ks-color-text-interface", rule.Tokens[2].Token)

	guidance, ok := rule.Guidance("--ks-color-text-display")
	require.True(t, ok)
	assert.Equal(t, "display", guidance.Role)
	assert.Equal(t, []string{"hero", "headline"}, guidance.ValidContexts)

	pairing, ok := rule.PairingRules["--ks-color-text-display"]
	require.True(t, ok)
	assert.Equal(t, "--ks-font-family-display", pairing["font-family"])
}

func TestUnmarshalScale(t *testing.T) {
	doc := `{
		"id": "spacing-scale",
		"name": "Spacing scale",
		"category": "spacing",
		"scale": [
			{"token": "--ks-spacing-xxs", "level": 1, "label": "tightest"},
			{"token": "--ks-spacing-m", "level": 4, "label": "default"}
		]
	}`

	rule := &rules.Rule{}
	require.NoError(t, json.Unmarshal([]byte(doc), rule))

	assert.Equal(t, rules.Scale, rule.Kind)
	require.Len(t, rule.Tokens, 2)
	assert.Equal(t, "--ks-spacing-xxs", rule.Tokens[0].Token)
	assert.Equal(t, 4, rule.Tokens[1].Level)

	// Omitted severity defaults to warning.
	assert.Equal(t, rules.Warning, rule.Severity)
}

func TestUnmarshalRejectsAmbiguousShape(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			"both shapes",
			`{"id": "x", "category": "spacing",
			  "tokens": {"--a": {}}, "scale": [{"token": "--b"}]}`,
		},
		{
			"neither shape",
			`{"id": "x", "category": "spacing"}`,
		},
		{
			"tokens as array",
			`{"id": "x", "category": "spacing", "tokens": [{"token": "--a"}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &rules.Rule{}
			assert.Error(t, json.Unmarshal([]byte(tt.doc), rule))
		})
	}
}

func TestSeverity(t *testing.T) {
	assert.True(t, rules.Critical.AtLeast(rules.Warning))
	assert.True(t, rules.Warning.AtLeast(rules.Warning))
	assert.False(t, rules.Info.AtLeast(rules.Warning))

	severity, err := rules.ParseSeverity("")
	require.NoError(t, err)
	assert.Equal(t, rules.Info, severity)

	severity, err = rules.ParseSeverity("critical")
	require.NoError(t, err)
	assert.Equal(t, rules.Critical, severity)

	_, err = rules.ParseSeverity("fatal")
	assert.Error(t, err)
}
