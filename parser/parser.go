/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser extracts custom-property declarations and their
// documentation context from stylesheet-like text.
package parser

import (
	"bennypowers.dev/shomer/fs"
	"bennypowers.dev/shomer/token"
)

// Options configures stylesheet parsing.
type Options struct {
	// SourceFile is the provenance label recorded on each record.
	SourceFile string

	// Category is the provenance category recorded on each record.
	Category string
}

// Parser parses stylesheet text into token records.
//
// Parsing never fails: malformed or unreadable input yields an empty
// mapping plus a logged diagnostic, because callers must tolerate
// partially-available sources.
type Parser interface {
	// Parse parses raw text and returns records keyed by token name.
	// Duplicate names within one text blob follow last-declaration-wins.
	Parse(data []byte, opts Options) map[string]*token.Record

	// ParseFile reads and parses a file from the given filesystem.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) map[string]*token.Record
}
