/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"
	"unicode/utf8"

	"bennypowers.dev/shomer/fs"
	"bennypowers.dev/shomer/internal/logger"
	"bennypowers.dev/shomer/token"
)

// CommentSeparator joins multiple pending documentation comments into
// one record comment.
const CommentSeparator = " | "

// CSSParser extracts custom-property declarations from stylesheet text
// in a single forward pass over lines.
type CSSParser struct{}

// NewCSSParser creates a new stylesheet token parser.
func NewCSSParser() *CSSParser {
	return &CSSParser{}
}

// scanState is the accumulator threaded through the line scan.
type scanState struct {
	// inBlockComment is true between an unclosed /* and its */.
	inBlockComment bool

	// blockLines accumulates the text of an open block comment.
	blockLines []string

	// pending holds documentation comments awaiting the next declaration.
	pending []string

	// section is the nearest preceding section marker text.
	section string
}

// Parse parses raw stylesheet text and returns records keyed by token
// name. Duplicate names follow last-declaration-wins.
func (p *CSSParser) Parse(data []byte, opts Options) map[string]*token.Record {
	records := make(map[string]*token.Record)
	if len(data) == 0 {
		return records
	}
	if !utf8.Valid(data) {
		logger.Warn("skipping %s: content is not valid UTF-8 text", opts.SourceFile)
		return records
	}

	st := &scanState{}
	for line := range strings.SplitSeq(string(data), "\n") {
		p.scanLine(line, st, records, opts)
	}
	return records
}

// ParseFile reads and parses path. An unreadable file yields zero
// records and a diagnostic, never an error.
func (p *CSSParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) map[string]*token.Record {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		logger.Warn("skipping %s: %v", path, err)
		return map[string]*token.Record{}
	}
	if opts.SourceFile == "" {
		opts.SourceFile = path
	}
	return p.Parse(data, opts)
}

func (p *CSSParser) scanLine(line string, st *scanState, records map[string]*token.Record, opts Options) {
	if st.inBlockComment {
		if idx := strings.Index(line, "*/"); idx >= 0 {
			if text := cleanCommentLine(line[:idx]); text != "" {
				st.blockLines = append(st.blockLines, text)
			}
			if joined := strings.Join(st.blockLines, " "); joined != "" {
				st.pending = append(st.pending, joined)
			}
			st.blockLines = nil
			st.inBlockComment = false
		} else if text := cleanCommentLine(line); text != "" {
			st.blockLines = append(st.blockLines, text)
		}
		return
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}

	// A block comment opened and closed on one line is a section
	// marker: it replaces the current section and discards pending
	// documentation, which belongs to no declaration.
	if m := SectionMarkerPattern.FindStringSubmatch(line); m != nil {
		st.section = strings.Trim(m[1], "=- \t")
		st.pending = nil
		return
	}

	if strings.HasPrefix(trimmed, "/*") {
		if idx := strings.Index(trimmed, "*/"); idx >= 0 {
			// Closed mid-line with trailing content; scan the remainder.
			p.scanLine(trimmed[idx+2:], st, records, opts)
			return
		}
		st.inBlockComment = true
		st.blockLines = nil
		if text := cleanCommentLine(strings.TrimPrefix(trimmed, "/*")); text != "" {
			st.blockLines = append(st.blockLines, text)
		}
		return
	}

	if m := LineCommentPattern.FindStringSubmatch(line); m != nil {
		if m[1] != "" {
			st.pending = append(st.pending, m[1])
		}
		return
	}

	if m := DeclarationPattern.FindStringSubmatch(line); m != nil {
		p.scanDeclaration(m[1], m[2], st, records, opts)
		return
	}

	// Brace-only lines are inert.
	if strings.Trim(trimmed, "{} \t") == "" {
		return
	}

	// A new rule-block opener: stale documentation must not leak onto
	// unrelated declarations. The section survives.
	if strings.Contains(trimmed, "{") {
		st.pending = nil
	}
}

// scanDeclaration builds a record from a matched declaration line.
// rest is everything after the colon.
func (p *CSSParser) scanDeclaration(name, rest string, st *scanState, records map[string]*token.Record, opts Options) {
	end := unescapedSemicolon(rest)
	if end < 0 {
		// Not a complete declaration; leave pending docs untouched.
		return
	}

	value := whitespaceRun.ReplaceAllString(strings.TrimSpace(rest[:end]), " ")

	if text := trailingComment(rest[end+1:]); text != "" {
		st.pending = append(st.pending, text)
	}

	records[name] = &token.Record{
		Name:       name,
		Value:      value,
		SourceFile: opts.SourceFile,
		Category:   opts.Category,
		Section:    st.section,
		Comment:    strings.Join(st.pending, CommentSeparator),
	}
	st.pending = nil
}

// trailingComment extracts documentation trailing a declaration's
// semicolon, in either // or /* */ form.
func trailingComment(after string) string {
	after = strings.TrimSpace(after)
	if text, ok := strings.CutPrefix(after, "//"); ok {
		return strings.TrimSpace(text)
	}
	if m := TrailingBlockPattern.FindStringSubmatch(after); m != nil {
		return m[1]
	}
	return ""
}

// cleanCommentLine strips comment decoration from one line of a block
// comment.
func cleanCommentLine(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "*")
	return strings.TrimSpace(line)
}

// unescapedSemicolon returns the index of the first semicolon in s not
// preceded by a backslash, or -1.
func unescapedSemicolon(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case ';':
			return i
		}
	}
	return -1
}
