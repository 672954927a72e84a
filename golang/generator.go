// Package golang generates Go source from a parsed constant header.
// Each module becomes a defined int32 type plus a typed const block.
package golang

import (
	"fmt"
	"strings"

	"github.com/teranos/hdrgen"
)

// Generator implements hdrgen.Generator for Go
type Generator struct {
	// PackageName is the package clause of the generated file
	PackageName string
}

// NewGenerator creates a new Go generator emitting into the given package.
// An empty name falls back to "ids".
func NewGenerator(packageName string) *Generator {
	if packageName == "" {
		packageName = "ids"
	}
	return &Generator{PackageName: packageName}
}

// Language returns "go"
func (g *Generator) Language() string {
	return "go"
}

// FileExtension returns "go"
func (g *Generator) FileExtension() string {
	return "go"
}

// GenerateFile creates a complete Go source file from a parsed header.
// Modules without constants contribute nothing.
func (g *Generator) GenerateFile(result *hdrgen.Result) string {
	var sb strings.Builder

	sb.WriteString("// Code generated by hdrgen from a C header. DO NOT EDIT.\n")
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("package %s\n", g.PackageName))

	for _, module := range result.Modules {
		if len(module.Constants) == 0 {
			continue
		}

		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("type %s int32\n\n", module.Name))
		sb.WriteString("const (\n")
		for _, c := range module.Constants {
			sb.WriteString(fmt.Sprintf("\t%s %s = %s\n", c.Name, module.Name, c.Value))
		}
		sb.WriteString(")\n")
	}

	return sb.String()
}
