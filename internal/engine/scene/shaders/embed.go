// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PointsVertexShader projects galaxy points and sizes them by distance.
//
//go:embed points.vert
var PointsVertexShader string

// PointsFragmentShader writes the per-vertex colour.
//
//go:embed points.frag
var PointsFragmentShader string
