/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import "regexp"

// Shared regex patterns for the stylesheet line scanner.

// DeclarationPattern matches a custom-property declaration line and
// captures the identifier and everything after the colon.
var DeclarationPattern = regexp.MustCompile(`^\s*(--[A-Za-z0-9_-]+)\s*:\s*(.*)$`)

// LineCommentPattern matches a full-line // comment and captures its text.
var LineCommentPattern = regexp.MustCompile(`^\s*//\s?(.*?)\s*$`)

// SectionMarkerPattern matches a block comment opened and closed on a
// single line. One-line block comments are structural section markers,
// not documentation.
var SectionMarkerPattern = regexp.MustCompile(`^\s*/\*+\s*(.*?)\s*\*+/\s*$`)

// TrailingBlockPattern matches a /* ... */ comment trailing a
// declaration's semicolon.
var TrailingBlockPattern = regexp.MustCompile(`^/\*+\s*(.*?)\s*\*+/`)

// whitespaceRun collapses internal runs of whitespace in values.
var whitespaceRun = regexp.MustCompile(`\s+`)
