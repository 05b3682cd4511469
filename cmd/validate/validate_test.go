/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCollectUsagesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "usages.json")
	doc := `[
		{"token": "--ks-color-text", "cssProperty": "color", "element": "paragraph"},
		{"value": "#ff0000", "cssProperty": "color"}
	]`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	usages, err := collectUsages(Cmd, []string{path})
	if err != nil {
		t.Fatalf("collectUsages() error = %v", err)
	}
	if len(usages) != 2 {
		t.Fatalf("len = %d, want 2", len(usages))
	}
	if usages[0].Token != "--ks-color-text" {
		t.Errorf("Token = %q", usages[0].Token)
	}
	if usages[1].Value != "#ff0000" {
		t.Errorf("Value = %q", usages[1].Value)
	}
}

func TestCollectUsagesFromFlags(t *testing.T) {
	if err := Cmd.Flags().Set("token", "--ks-color-text"); err != nil {
		t.Fatal(err)
	}
	if err := Cmd.Flags().Set("property", "color"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = Cmd.Flags().Set("token", "")
		_ = Cmd.Flags().Set("property", "")
	})

	usages, err := collectUsages(Cmd, nil)
	if err != nil {
		t.Fatalf("collectUsages() error = %v", err)
	}
	if len(usages) != 1 {
		t.Fatalf("len = %d, want 1", len(usages))
	}
	if usages[0].CSSProperty != "color" {
		t.Errorf("CSSProperty = %q", usages[0].CSSProperty)
	}
}

func TestCollectUsagesRequiresInput(t *testing.T) {
	if _, err := collectUsages(Cmd, nil); err == nil {
		t.Fatal("expected an error with no token, value, or file")
	}
}

func TestCollectUsagesBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "usages.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := collectUsages(Cmd, []string{path}); err == nil {
		t.Fatal("expected a parse error")
	}
}
