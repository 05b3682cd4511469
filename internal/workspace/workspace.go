/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package workspace wires the filesystem, config, registry, rule
// store, and validation engine for one project root, so commands
// share a single construction path.
package workspace

import (
	"github.com/spf13/viper"

	"bennypowers.dev/shomer/config"
	"bennypowers.dev/shomer/fs"
	"bennypowers.dev/shomer/intent"
	"bennypowers.dev/shomer/registry"
	"bennypowers.dev/shomer/rules"
	"bennypowers.dev/shomer/source"
)

// Workspace bundles the long-lived collaborators for one project.
type Workspace struct {
	Root     string
	FS       fs.FileSystem
	Config   *config.Config
	Provider *source.FSProvider
	Registry *registry.Registry
	Rules    *rules.Store
	Engine   *intent.Engine
}

// Open loads the project at root. A non-empty prefix overrides the
// configured global namespace.
func Open(root, prefix string) *Workspace {
	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, root)
	if prefix != "" {
		cfg.Prefix = prefix
	}

	provider := source.NewFSProvider(filesystem, root, cfg)
	reg := registry.New(provider, provider.Catalog(), cfg)
	store := rules.NewStore(provider)

	return &Workspace{
		Root:     root,
		FS:       filesystem,
		Config:   cfg,
		Provider: provider,
		Registry: reg,
		Rules:    store,
		Engine:   intent.NewEngine(reg, store),
	}
}

// FromFlags opens the workspace using the root and prefix flags bound
// to viper by the root command.
func FromFlags() *Workspace {
	root := viper.GetString("root")
	if root == "" {
		root = "."
	}
	return Open(root, viper.GetString("prefix"))
}
