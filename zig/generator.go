// Package zig generates Zig enum source from a parsed constant header.
//
// This is the default target. The output is kept byte-identical to what the
// original header translator produced, so downstream build steps that diff
// the generated file stay quiet.
package zig

import (
	"fmt"
	"strings"

	"github.com/teranos/hdrgen"
)

// Generator implements hdrgen.Generator for Zig
type Generator struct{}

// NewGenerator creates a new Zig generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "zig"
func (g *Generator) Language() string {
	return "zig"
}

// FileExtension returns "zig"
func (g *Generator) FileExtension() string {
	return "zig"
}

// GenerateFile creates a complete Zig source document from a parsed header.
// Modules without constants contribute nothing: empty enums are noise.
//
// Zig convention is often TitleCase for enum members, but for C interop
// keeping the original constant names is safer.
func (g *Generator) GenerateFile(result *hdrgen.Result) string {
	lines := []string{"// Generated from C Header\n"}

	for _, module := range result.Modules {
		if len(module.Constants) == 0 {
			continue
		}

		lines = append(lines, fmt.Sprintf("pub const %s = enum(i32) {", module.Name))
		for _, c := range module.Constants {
			lines = append(lines, fmt.Sprintf("    %s = %s,", c.Name, c.Value))
		}
		lines = append(lines, "};\n")
	}

	return strings.Join(lines, "\n")
}
