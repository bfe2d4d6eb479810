// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package graphstore

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// marshalConfig encodes a pass configuration as a cty object and returns the
// JSON of its type and of its value.
func marshalConfig(cfg map[string]cty.Value) (string, string, error) {
	val := cty.EmptyObjectVal
	if len(cfg) > 0 {
		val = cty.ObjectVal(cfg)
	}
	ty, err := ctyjson.MarshalType(val.Type())
	if err != nil {
		return "", "", fmt.Errorf("encode config type: %w", err)
	}
	data, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return "", "", fmt.Errorf("encode config: %w", err)
	}
	return string(ty), string(data), nil
}

func unmarshalConfig(typeJSON, valueJSON string) (map[string]cty.Value, error) {
	ty, err := ctyjson.UnmarshalType([]byte(typeJSON))
	if err != nil {
		return nil, fmt.Errorf("decode config type: %w", err)
	}
	val, err := ctyjson.Unmarshal([]byte(valueJSON), ty)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	out := make(map[string]cty.Value, len(ty.AttributeTypes()))
	for k, v := range val.AsValueMap() {
		out[k] = v
	}
	return out, nil
}
