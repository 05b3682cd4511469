/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides design token record types, the token name
// decomposer, and the value classifier.
package token

// ValueType classifies how a token's raw value is expressed.
type ValueType string

const (
	// Literal is a plain value with no reference to another token.
	Literal ValueType = "literal"

	// GlobalReference is a var() reference to a global token.
	GlobalReference ValueType = "global-reference"

	// ComponentReference is a var() reference to a component or layout token.
	ComponentReference ValueType = "component-reference"

	// Calculated is a calc() expression that references another token.
	Calculated ValueType = "calculated"
)

// UnknownProperty is the sentinel CSS property for names the decomposer
// cannot recover a property segment from.
const UnknownProperty = "unknown"

// Record represents one declared custom property.
type Record struct {
	// Name is the token's identifier, including the -- prefix.
	Name string `json:"name"`

	// Value is the raw textual value, whitespace-normalized.
	Value string `json:"value"`

	// SourceFile is the provenance label set by the content source.
	SourceFile string `json:"sourceFile"`

	// Category is the provenance category set by the content source.
	Category string `json:"category"`

	// Section is the nearest preceding section marker comment, if any.
	Section string `json:"section,omitempty"`

	// Comment is the documentation attached to the declaration, if any.
	Comment string `json:"comment,omitempty"`
}

// ComponentRecord is a Record enriched with the semantics recovered
// from the component token naming grammar.
type ComponentRecord struct {
	Record

	// Component is the owning component slug, supplied by the registry.
	Component string `json:"component"`

	// Element is the sub-element path ("header.title" for nesting), if any.
	Element string `json:"element,omitempty"`

	// Variant is the component variant ("primary"), if any.
	Variant string `json:"variant,omitempty"`

	// State is the interaction state ("hover"), if any.
	State string `json:"state,omitempty"`

	// CSSProperty is the stylistic property the token sets.
	// Defaults to UnknownProperty when nothing is recoverable.
	CSSProperty string `json:"cssProperty"`

	// ValueType classifies the token's raw value.
	ValueType ValueType `json:"valueType"`

	// ReferencedToken is the identifier of the token this value points
	// to. Set iff ValueType is a reference or calculated form and a
	// reference was recoverable from the value text.
	ReferencedToken string `json:"referencedToken,omitempty"`
}

// HasState reports whether the token declares an interaction state.
func (r *ComponentRecord) HasState() bool {
	return r.State != ""
}
