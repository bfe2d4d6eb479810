// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// fileRoot is used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Kinds     []*kindBlock     `hcl:"kind,block"`
	PassTypes []*passTypeBlock `hcl:"pass_type,block"`
	Graphs    []*graphBlock    `hcl:"graph,block"`
}

// --- Manifest schemas ---

type kindBlock struct {
	Name           string   `hcl:"name,label"`
	CompatibleWith []string `hcl:"compatible_with,optional"`
}

type passTypeBlock struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	Inputs      []*portBlock   `hcl:"input,block"`
	Outputs     []*portBlock   `hcl:"output,block"`
	Options     []*optionBlock `hcl:"option,block"`
}

type portBlock struct {
	Name        string `hcl:"name,label"`
	Kind        string `hcl:"kind,optional"`
	Optional    bool   `hcl:"optional,optional"`
	Description string `hcl:"description,optional"`
}

type optionBlock struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Default     *cty.Value     `hcl:"default,optional"`
	Description string         `hcl:"description,optional"`
}

// --- Graph schemas ---

type graphBlock struct {
	Name    string         `hcl:"name,label"`
	Passes  []*passBlock   `hcl:"pass,block"`
	Edges   []*edgeBlock   `hcl:"edge,block"`
	Outputs []*outputBlock `hcl:"output,block"`
	// OutputList is the compact alternative to output blocks.
	OutputList []string `hcl:"outputs,optional"`
}

type passBlock struct {
	Type string `hcl:"type,label"`
	Name string `hcl:"name,label"`
	// Config holds the pass options as plain attributes.
	Config hcl.Body `hcl:",remain"`
}

type edgeBlock struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

type outputBlock struct {
	Ref string `hcl:"ref,label"`
}
