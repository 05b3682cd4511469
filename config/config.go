/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for token governance.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Config represents the shomer configuration.
type Config struct {
	// Prefix is the global token namespace ("ks" for --ks-* tokens).
	Prefix string `yaml:"prefix" json:"prefix"`

	// ComponentPrefix is the component token namespace ("dsa").
	ComponentPrefix string `yaml:"componentPrefix" json:"componentPrefix"`

	// LayoutPrefix is the layout token namespace ("l").
	LayoutPrefix string `yaml:"layoutPrefix" json:"layoutPrefix"`

	// Tokens lists global stylesheet sources (paths or globs).
	Tokens []FileSpec `yaml:"tokens" json:"tokens"`

	// Components is the static component catalog.
	Components []ComponentEntry `yaml:"components" json:"components"`

	// Rules is the directory holding design rule documents.
	Rules string `yaml:"rules" json:"rules"`
}

// FileSpec represents a stylesheet source specification.
// It can be specified as a simple string path or as an object with a
// category label.
type FileSpec struct {
	// Path is the file path (supports globs).
	Path string `yaml:"path" json:"path"`

	// Category is the provenance category for tokens from this source.
	Category string `yaml:"category" json:"category"`
}

// ComponentEntry describes one component in the static catalog.
type ComponentEntry struct {
	// Slug is the component identifier used in token names.
	Slug string `yaml:"slug" json:"slug"`

	// Path is the stylesheet declaring the component's tokens.
	Path string `yaml:"path" json:"path"`

	// Category groups components for audit sweeps.
	Category string `yaml:"category" json:"category"`

	// Description is a human description of the component.
	Description string `yaml:"description" json:"description"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Prefix:          "ks",
		ComponentPrefix: "dsa",
		LayoutPrefix:    "l",
		Rules:           ".config/rules",
	}
}

// withDefaults fills empty namespace fields from Default so partial
// config files still resolve prefixes.
func (c *Config) withDefaults() *Config {
	d := Default()
	if c.Prefix == "" {
		c.Prefix = d.Prefix
	}
	if c.ComponentPrefix == "" {
		c.ComponentPrefix = d.ComponentPrefix
	}
	if c.LayoutPrefix == "" {
		c.LayoutPrefix = d.LayoutPrefix
	}
	if c.Rules == "" {
		c.Rules = d.Rules
	}
	return c
}

// GlobalPrefix returns the full custom-property prefix for global
// tokens, e.g. "--ks-".
func (c *Config) GlobalPrefix() string {
	return "--" + c.Prefix + "-"
}

// ComponentPrefixes returns the custom-property prefixes that mark a
// referenced identifier as component or layout scoped.
func (c *Config) ComponentPrefixes() []string {
	return []string{
		"--" + c.ComponentPrefix + "-",
		"--" + c.LayoutPrefix + "-",
	}
}

// Component returns the catalog entry for slug.
func (c *Config) Component(slug string) (ComponentEntry, bool) {
	for _, entry := range c.Components {
		if entry.Slug == slug {
			return entry, true
		}
	}
	return ComponentEntry{}, false
}
