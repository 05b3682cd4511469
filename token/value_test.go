/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"testing"

	"bennypowers.dev/shomer/token"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := &token.Classifier{}

	tests := []struct {
		name     string
		value    string
		expected token.Classification
	}{
		{
			name:     "global reference",
			value:    "var(--ks-spacing-m)",
			expected: token.Classification{ValueType: token.GlobalReference, ReferencedToken: "--ks-spacing-m"},
		},
		{
			name:     "global reference with fallback",
			value:    "var(--ks-spacing-m, 1rem)",
			expected: token.Classification{ValueType: token.GlobalReference, ReferencedToken: "--ks-spacing-m"},
		},
		{
			name:     "component reference",
			value:    "var(--dsa-button--padding)",
			expected: token.Classification{ValueType: token.ComponentReference, ReferencedToken: "--dsa-button--padding"},
		},
		{
			name:     "layout reference",
			value:    "var(--l-grid-gap)",
			expected: token.Classification{ValueType: token.ComponentReference, ReferencedToken: "--l-grid-gap"},
		},
		{
			name:     "calculated",
			value:    "calc(var(--ks-spacing-xxs) * 0.5)",
			expected: token.Classification{ValueType: token.Calculated, ReferencedToken: "--ks-spacing-xxs"},
		},
		{
			name:     "calc around two references uses the first",
			value:    "calc(var(--ks-spacing-s) + var(--ks-spacing-m))",
			expected: token.Classification{ValueType: token.Calculated, ReferencedToken: "--ks-spacing-s"},
		},
		{
			name:     "shorthand mixing literal and reference",
			value:    "1px solid var(--ks-color-border)",
			expected: token.Classification{ValueType: token.GlobalReference, ReferencedToken: "--ks-color-border"},
		},
		{
			name:     "shorthand with component reference",
			value:    "0 var(--dsa-card--padding)",
			expected: token.Classification{ValueType: token.ComponentReference, ReferencedToken: "--dsa-card--padding"},
		},
		{
			name:     "literal dimension",
			value:    "0.75em 1.5em",
			expected: token.Classification{ValueType: token.Literal},
		},
		{
			name:     "literal color",
			value:    "#ff0000",
			expected: token.Classification{ValueType: token.Literal},
		},
		{
			name:     "calc without reference is literal",
			value:    "calc(100% - 2rem)",
			expected: token.Classification{ValueType: token.Literal},
		},
		{
			name:     "empty value",
			value:    "",
			expected: token.Classification{ValueType: token.Literal},
		},
		{
			name:     "surrounding whitespace is ignored",
			value:    "  var(--ks-radius-s)  ",
			expected: token.Classification{ValueType: token.GlobalReference, ReferencedToken: "--ks-radius-s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.value)
			if got != tt.expected {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestClassifier_ReferencedTokenInvariant(t *testing.T) {
	classifier := &token.Classifier{}

	// For every classification, ReferencedToken is non-empty iff the
	// value type is not literal.
	values := []string{
		"var(--ks-spacing-m)",
		"calc(var(--ks-spacing-xxs) * 0.5)",
		"1px solid var(--ks-color-border)",
		"#336699",
		"none",
		"calc(2 * 3px)",
		"var(broken",
	}

	for _, value := range values {
		c := classifier.Classify(value)
		hasRef := c.ReferencedToken != ""
		if (c.ValueType != token.Literal) != hasRef {
			t.Errorf("Classify(%q) = %+v: referencedToken must be set iff non-literal", value, c)
		}
	}
}

func TestClassifier_CustomPrefixes(t *testing.T) {
	classifier := &token.Classifier{ComponentPrefixes: []string{"--c-"}}

	got := classifier.Classify("var(--c-button--padding)")
	if got.ValueType != token.ComponentReference {
		t.Errorf("expected component reference for configured prefix, got %s", got.ValueType)
	}

	got = classifier.Classify("var(--dsa-button--padding)")
	if got.ValueType != token.GlobalReference {
		t.Errorf("configured prefixes replace the defaults, got %s", got.ValueType)
	}
}
