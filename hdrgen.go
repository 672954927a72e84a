// Package hdrgen parses C-style headers of grouped integer constants into a
// language-agnostic model that per-language generators emit enum source from.
//
// The input format is narrow and trusted: `/* module Name */` markers group
// the `const long Name = Value;` declarations that follow them, up to the
// next marker. Parsing is a single regex pass over the whole input; constant
// values are kept as literal decimal text, so no precision is lost and no
// range validation happens.
package hdrgen

import (
	"regexp"
	"strings"
)

// uiaPrefix is stripped from module names before they become type names.
// UI Automation headers prefix every group with it; the generated type name
// does not want it repeated.
const uiaPrefix = "UIA_"

var (
	// moduleRegex matches module markers: /* module Name */
	moduleRegex = regexp.MustCompile(`/\* module (\w+) \*/`)

	// constRegex matches constant declarations: const long Name = Value;
	// Whitespace between tokens is flexible (tabs or spaces).
	constRegex = regexp.MustCompile(`const\s+long\s+(\w+)\s*=\s*(\d+);`)
)

// Constant is a single named integer constant. Value is the literal decimal
// text from the header, never parsed into a numeric type.
type Constant struct {
	Name  string
	Value string
}

// Module is a named group of constants introduced by one marker comment.
// Name has the "UIA_" prefix already stripped.
type Module struct {
	Name      string
	Constants []Constant
}

// Result holds the parsed modules in order of first appearance. Modules
// without constants stay in the slice so callers can report them; emitters
// skip them.
type Result struct {
	Modules []Module
}

// Parse scans a header for module markers and collects the constant
// declarations inside each module's span. A module's span runs from the end
// of its marker to the start of the next marker, or to the end of input for
// the last one. Pure function of its input: no I/O, no shared state.
func Parse(contents string) *Result {
	result := &Result{}

	markers := moduleRegex.FindAllStringSubmatchIndex(contents, -1)
	for i, marker := range markers {
		name := strings.TrimPrefix(contents[marker[2]:marker[3]], uiaPrefix)

		start := marker[1]
		end := len(contents)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		span := contents[start:end]

		module := Module{Name: name}
		for _, m := range constRegex.FindAllStringSubmatch(span, -1) {
			module.Constants = append(module.Constants, Constant{Name: m[1], Value: m[2]})
		}
		result.Modules = append(result.Modules, module)
	}

	return result
}
