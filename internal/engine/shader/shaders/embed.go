// Package shaders provides the embedded GLSL sources.
package shaders

import "embed"

// FS holds every *.vert and *.frag file in this directory.
//
//go:embed *.vert *.frag
var FS embed.FS
