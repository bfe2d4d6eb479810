// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"maps"
	"slices"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/passgraph/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// Write renders graph definitions as an HCL document the Loader reads back
// into the same definitions. Passes keep their order, configuration keys are
// sorted, and outputs are written as the compact `outputs` list.
func Write(defs ...*config.GraphDefinition) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()
	for i, def := range defs {
		if i > 0 {
			root.AppendNewline()
		}
		writeGraph(root, def)
	}
	return hclwrite.Format(f.Bytes())
}

func writeGraph(root *hclwrite.Body, def *config.GraphDefinition) {
	body := root.AppendNewBlock("graph", []string{def.Name}).Body()
	first := true
	section := func() {
		if !first {
			body.AppendNewline()
		}
		first = false
	}

	for _, p := range def.Passes {
		section()
		pb := body.AppendNewBlock("pass", []string{p.Type, p.Name}).Body()
		for _, key := range slices.Sorted(maps.Keys(p.Config)) {
			pb.SetAttributeValue(key, p.Config[key])
		}
	}
	for _, e := range def.Edges {
		section()
		eb := body.AppendNewBlock("edge", nil).Body()
		eb.SetAttributeValue("from", cty.StringVal(e.From))
		eb.SetAttributeValue("to", cty.StringVal(e.To))
	}
	if len(def.Outputs) > 0 {
		section()
		refs := make([]cty.Value, len(def.Outputs))
		for i, o := range def.Outputs {
			refs[i] = cty.StringVal(o)
		}
		body.SetAttributeValue("outputs", cty.ListVal(refs))
	}
}
