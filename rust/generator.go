// Package rust generates Rust enum source from a parsed constant header.
package rust

import (
	"fmt"
	"strings"

	"github.com/teranos/hdrgen"
)

// Generator implements hdrgen.Generator for Rust
type Generator struct{}

// NewGenerator creates a new Rust generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "rust"
func (g *Generator) Language() string {
	return "rust"
}

// FileExtension returns "rs"
func (g *Generator) FileExtension() string {
	return "rs"
}

// GenerateFile creates a complete Rust source file from a parsed header.
// Each module becomes a #[repr(i32)] enum with explicit discriminants;
// modules without constants contribute nothing. Constant names are kept
// verbatim rather than converted to PascalCase, for C interop parity with
// the other emitters.
func (g *Generator) GenerateFile(result *hdrgen.Result) string {
	var sb strings.Builder

	sb.WriteString("// Code generated by hdrgen from a C header. DO NOT EDIT.\n")

	for _, module := range result.Modules {
		if len(module.Constants) == 0 {
			continue
		}

		sb.WriteString("\n")
		sb.WriteString("#[repr(i32)]\n")
		sb.WriteString("#[derive(Debug, Clone, Copy, PartialEq, Eq)]\n")
		sb.WriteString(fmt.Sprintf("pub enum %s {\n", module.Name))
		for _, c := range module.Constants {
			sb.WriteString(fmt.Sprintf("    %s = %s,\n", c.Name, c.Value))
		}
		sb.WriteString("}\n")
	}

	return sb.String()
}
