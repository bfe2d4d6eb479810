// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package yamlmanifest

type document struct {
	Kinds     []kindDoc     `yaml:"kinds"`
	PassTypes []passTypeDoc `yaml:"pass_types"`
	Graphs    []graphDoc    `yaml:"graphs"`
}

type kindDoc struct {
	Name           string   `yaml:"name"`
	CompatibleWith []string `yaml:"compatible_with"`
}

type passTypeDoc struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Inputs      []portDoc   `yaml:"inputs"`
	Outputs     []portDoc   `yaml:"outputs"`
	Options     []optionDoc `yaml:"options"`
}

type portDoc struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"`
	Optional    bool   `yaml:"optional"`
	Description string `yaml:"description"`
}

type optionDoc struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Enum        []string `yaml:"enum"`
	Default     any      `yaml:"default"`
	Description string   `yaml:"description"`
}

type graphDoc struct {
	Name    string    `yaml:"name"`
	Passes  []passDoc `yaml:"passes"`
	Edges   []edgeDoc `yaml:"edges"`
	Outputs []string  `yaml:"outputs"`
}

type passDoc struct {
	Name   string         `yaml:"name"`
	Type   string         `yaml:"type"`
	Config map[string]any `yaml:"config"`
}

type edgeDoc struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}
