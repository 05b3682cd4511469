/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"reflect"
	"testing"

	"bennypowers.dev/shomer/parser"
	"bennypowers.dev/shomer/token"
)

func parse(t *testing.T, text string) map[string]*token.Record {
	t.Helper()
	p := parser.NewCSSParser()
	return p.Parse([]byte(text), parser.Options{SourceFile: "test.css", Category: "test"})
}

func TestCSSParser_SingleDeclaration(t *testing.T) {
	records := parse(t, "--x: v;\n")

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records["--x"]
	if rec == nil {
		t.Fatal("expected record for --x")
	}
	if rec.Value != "v" {
		t.Errorf("Value = %q, want %q", rec.Value, "v")
	}
	if rec.SourceFile != "test.css" || rec.Category != "test" {
		t.Errorf("provenance = %q/%q, want test.css/test", rec.SourceFile, rec.Category)
	}
}

func TestCSSParser_SectionAndTrailingComment(t *testing.T) {
	records := parse(t, "/* Sizes */\n--dsa-button--padding: 0.75em  1.5em; // default\n")

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records["--dsa-button--padding"]
	if rec == nil {
		t.Fatal("expected record for --dsa-button--padding")
	}
	if rec.Value != "0.75em 1.5em" {
		t.Errorf("Value = %q, want %q", rec.Value, "0.75em 1.5em")
	}
	if rec.Comment != "default" {
		t.Errorf("Comment = %q, want %q", rec.Comment, "default")
	}
	if rec.Section != "Sizes" {
		t.Errorf("Section = %q, want %q", rec.Section, "Sizes")
	}
}

func TestCSSParser_Comments(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		token    string
		expected string
	}{
		{
			name:     "line comment attaches to next declaration",
			text:     "// button padding\n--x: 1rem;\n",
			token:    "--x",
			expected: "button padding",
		},
		{
			name:     "multiple line comments are joined",
			text:     "// first\n// second\n--x: 1rem;\n",
			token:    "--x",
			expected: "first | second",
		},
		{
			name:     "multi-line block comment is documentation",
			text:     "/*\n * button padding\n * in ems\n */\n--x: 1rem;\n",
			token:    "--x",
			expected: "button padding in ems",
		},
		{
			name:     "line comment plus trailing block comment",
			text:     "// doc\n--x: 1rem; /* trailing */\n",
			token:    "--x",
			expected: "doc | trailing",
		},
		{
			name:     "section marker clears pending documentation",
			text:     "// stale\n/* Colors */\n--x: 1rem;\n",
			token:    "--x",
			expected: "",
		},
		{
			name:     "rule opener clears pending documentation",
			text:     "// stale\n.button {\n--x: 1rem;\n",
			token:    "--x",
			expected: "",
		},
		{
			name:     "blank and brace lines are inert",
			text:     "// doc\n\n}\n--x: 1rem;\n",
			token:    "--x",
			expected: "doc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := parse(t, tt.text)
			rec := records[tt.token]
			if rec == nil {
				t.Fatalf("expected record for %s", tt.token)
			}
			if rec.Comment != tt.expected {
				t.Errorf("Comment = %q, want %q", rec.Comment, tt.expected)
			}
		})
	}
}

func TestCSSParser_SectionPersists(t *testing.T) {
	text := "/* === Spacing === */\n--a: 1rem;\n--b: 2rem;\n/* Colors */\n--c: #fff;\n"
	records := parse(t, text)

	if got := records["--a"].Section; got != "Spacing" {
		t.Errorf("--a Section = %q, want Spacing", got)
	}
	if got := records["--b"].Section; got != "Spacing" {
		t.Errorf("--b Section = %q, want Spacing (sections persist across declarations)", got)
	}
	if got := records["--c"].Section; got != "Colors" {
		t.Errorf("--c Section = %q, want Colors", got)
	}
}

func TestCSSParser_DuplicateLastWins(t *testing.T) {
	records := parse(t, "--x: 1rem;\n--x: 2rem;\n")

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records["--x"].Value != "2rem" {
		t.Errorf("Value = %q, want 2rem (last declaration wins)", records["--x"].Value)
	}
}

func TestCSSParser_ValueEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		token    string
		expected string
	}{
		{
			name:     "value stops at first semicolon",
			text:     "--x: 1rem; --y: 2rem;\n",
			token:    "--x",
			expected: "1rem",
		},
		{
			name:     "escaped semicolon is part of the value",
			text:     `--x: "a\;b";` + "\n",
			token:    "--x",
			expected: `"a\;b"`,
		},
		{
			name:     "function values survive",
			text:     "--x: calc(var(--ks-spacing-m) * 2);\n",
			token:    "--x",
			expected: "calc(var(--ks-spacing-m) * 2)",
		},
		{
			name:     "internal whitespace collapses",
			text:     "--x: 0   auto\t 1rem;\n",
			token:    "--x",
			expected: "0 auto 1rem",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := parse(t, tt.text)
			rec := records[tt.token]
			if rec == nil {
				t.Fatalf("expected record for %s", tt.token)
			}
			if rec.Value != tt.expected {
				t.Errorf("Value = %q, want %q", rec.Value, tt.expected)
			}
		})
	}
}

func TestCSSParser_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty input", text: ""},
		{name: "no declarations", text: ".button { color: red; }\n"},
		{name: "declaration without semicolon", text: "--x: 1rem\n"},
		{name: "binary garbage", text: "\xff\xfe\x00broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := parse(t, tt.text)
			if len(records) != 0 {
				t.Errorf("expected empty mapping, got %d records", len(records))
			}
		})
	}
}

func TestCSSParser_Idempotent(t *testing.T) {
	text := "/* Sizes */\n// doc\n--a: 1rem; // trailing\n--b: var(--ks-spacing-m);\n"
	p := parser.NewCSSParser()
	opts := parser.Options{SourceFile: "test.css", Category: "test"}

	first := p.Parse([]byte(text), opts)
	second := p.Parse([]byte(text), opts)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("parsing twice differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
