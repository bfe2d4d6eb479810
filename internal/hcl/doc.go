// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package hcl provides the HCL implementation of config.Loader and the
// matching writer. It is responsible for all file parsing, HCL-to-model
// translation and the reverse rendering of graph definitions.
//
// A file may hold any mix of the three top-level blocks:
//
//	kind "shadow-map" {
//	  compatible_with = ["depth"]
//	}
//
//	pass_type "SkyBox" {
//	  input "depth" { kind = "depth" }
//	  output "target" { kind = "color" }
//	  option "filter" {
//	    type    = enum("Point", "Linear")
//	    default = "Linear"
//	  }
//	}
//
//	graph "SimpleRenderer" {
//	  pass "SkyBox" "SkyBox" {
//	    filter = "Linear"
//	  }
//	  edge {
//	    from = "DepthPass.depth"
//	    to   = "SkyBox.depth"
//	  }
//	  outputs = ["SkyBox.target"]
//	}
package hcl
