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

	"bennypowers.dev/shomer/intent"
	"bennypowers.dev/shomer/registry"
	"bennypowers.dev/shomer/rules"
)

func TestAuditComponent(t *testing.T) {
	engine := newTestEngine(t)

	report, err := engine.AuditComponent("button")
	require.NoError(t, err)

	assert.Equal(t, "button", report.Component)
	assert.Equal(t, "form", report.Category)
	assert.Equal(t, 5, report.TokenCount)

	byRule := map[string][]intent.Violation{}
	for _, v := range report.Violations {
		byRule[v.RuleID] = append(byRule[v.RuleID], v)
	}

	// --dsa-button_danger--background-color references a token nobody
	// declares.
	phantoms := byRule[intent.RuleTokenExistence]
	require.Len(t, phantoms, 1)
	assert.Equal(t, rules.Critical, phantoms[0].Severity)
	assert.Equal(t, "--dsa-button_danger--background-color", phantoms[0].Token)
	assert.Contains(t, phantoms[0].Message, "--ks-color-missing")

	// --dsa-button--border-color holds a raw hex literal.
	hardcoded := byRule[intent.RuleHardcodedValue]
	require.Len(t, hardcoded, 1)
	assert.Equal(t, "--dsa-button--border-color", hardcoded[0].Token)

	// --dsa-button--background-color reaches into the raw palette.
	primitives := byRule[intent.RulePrimitiveToken]
	require.Len(t, primitives, 1)
	assert.Equal(t, "--dsa-button--background-color", primitives[0].Token)
	assert.Contains(t, primitives[0].Message, "--ks-color-blue-60")

	// background-color declares a hover state on the default variant;
	// the other color-bearing groups do not.
	states := byRule[intent.RuleStateCompleteness]
	require.Len(t, states, 3)
	for _, v := range states {
		assert.Contains(t, v.Message, "hover")
	}

	assert.Equal(t, 2, report.Summary.Critical)
	assert.Equal(t, 4, report.Summary.Warning)
	assert.Equal(t, 0, report.Summary.Info)

	// Critical violations sort first.
	assert.Equal(t, rules.Critical, report.Violations[0].Severity)
}

func TestAuditComponentUnknownSlug(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.AuditComponent("tooltip")
	var notFound *registry.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestAuditAll(t *testing.T) {
	engine := newTestEngine(t)

	summary, err := engine.AuditAll("", rules.Info)
	require.NoError(t, err)
	require.Len(t, summary.Components, 1)

	row := summary.Components[0]
	assert.Equal(t, "button", row.Component)
	assert.Equal(t, 2, row.Critical)
	assert.Equal(t, 4, row.Warning)
	assert.Equal(t, 5, summary.TokenCount)
	assert.Equal(t, 2, summary.Totals.Critical)
}

func TestAuditAllMinSeverity(t *testing.T) {
	engine := newTestEngine(t)

	summary, err := engine.AuditAll("", rules.Critical)
	require.NoError(t, err)
	require.Len(t, summary.Components, 1)
	assert.Equal(t, 2, summary.Components[0].Critical)
	assert.Equal(t, 0, summary.Components[0].Warning)
}

func TestAuditAllCategoryFilter(t *testing.T) {
	engine := newTestEngine(t)

	summary, err := engine.AuditAll("navigation", rules.Info)
	require.NoError(t, err)
	assert.Empty(t, summary.Components)
}
