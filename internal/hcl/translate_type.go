// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// This file contains the logic for parsing option type expressions (e.g.
// `vec2`, `enum("Point", "Linear")`) into option kind keywords.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/passgraph/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

var optionKeywords = map[string]bool{
	"string": true,
	"number": true,
	"bool":   true,
	"vec2":   true,
	"vec3":   true,
	"path":   true,
}

// typeExprToOptionKind converts an option type expression into its kind
// keyword and, for enums, the allowed values.
func typeExprToOptionKind(ctx context.Context, expr hcl.Expression) (string, []string, error) {
	logger := ctxlog.FromContext(ctx)

	switch v := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return "", nil, fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
		}
		keyword := v.Traversal.RootName()
		logger.Debug("Parsing option type as a keyword.", "keyword", keyword)
		if !optionKeywords[keyword] {
			return "", nil, fmt.Errorf("unknown option type %q", keyword)
		}
		return keyword, nil, nil

	case *hclsyntax.FunctionCallExpr:
		logger.Debug("Parsing option type as a constructor.", "call", v.Name)
		if v.Name != "enum" {
			return "", nil, fmt.Errorf("unknown option type constructor %q", v.Name)
		}
		if len(v.Args) == 0 {
			return "", nil, fmt.Errorf("enum() requires at least one value")
		}
		values := make([]string, 0, len(v.Args))
		for i, arg := range v.Args {
			val, diags := arg.Value(nil)
			if diags.HasErrors() {
				return "", nil, fmt.Errorf("enum() argument %d: %w", i+1, diags)
			}
			if !val.Type().Equals(cty.String) || val.IsNull() {
				return "", nil, fmt.Errorf("enum() argument %d must be a string literal, got %s", i+1, val.Type().FriendlyName())
			}
			values = append(values, val.AsString())
		}
		return "enum", values, nil

	default:
		return "", nil, fmt.Errorf("unsupported expression for option type: %T", v)
	}
}
