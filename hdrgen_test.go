package hdrgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHeader = `/* module UIA_ButtonControlTypeId */
const long UIA_ButtonControlTypeId = 50000;
const long UIA_CalendarControlTypeId = 50001;
/* module EmptyThing */
/* module PatternIds */
const long InvokePatternId = 10000;
`

func TestParse_ModuleOrderPreserved(t *testing.T) {
	result := Parse(sampleHeader)

	require.Len(t, result.Modules, 3)
	assert.Equal(t, "ButtonControlTypeId", result.Modules[0].Name)
	assert.Equal(t, "EmptyThing", result.Modules[1].Name)
	assert.Equal(t, "PatternIds", result.Modules[2].Name)
}

func TestParse_ConstantOrderPreserved(t *testing.T) {
	result := Parse(sampleHeader)

	require.Len(t, result.Modules, 3)
	constants := result.Modules[0].Constants
	require.Len(t, constants, 2)
	assert.Equal(t, Constant{Name: "UIA_ButtonControlTypeId", Value: "50000"}, constants[0])
	assert.Equal(t, Constant{Name: "UIA_CalendarControlTypeId", Value: "50001"}, constants[1])
}

func TestParse_EmptyModuleKept(t *testing.T) {
	// Empty modules stay in the Result for diagnostics; emitters skip them
	result := Parse(sampleHeader)

	require.Len(t, result.Modules, 3)
	assert.Empty(t, result.Modules[1].Constants)
}

func TestParse_PrefixStripping(t *testing.T) {
	tests := []struct {
		marker string
		want   string
	}{
		{"UIA_ControlTypeIds", "ControlTypeIds"},
		{"PatternIds", "PatternIds"},
		{"UIA_", ""},
		{"MyUIA_Thing", "MyUIA_Thing"}, // prefix must match at the start
	}

	for _, tt := range tests {
		t.Run(tt.marker, func(t *testing.T) {
			result := Parse("/* module " + tt.marker + " */\n")
			require.Len(t, result.Modules, 1)
			assert.Equal(t, tt.want, result.Modules[0].Name)
		})
	}
}

func TestParse_ConstantNamesNotStripped(t *testing.T) {
	// Only module names lose the prefix; constant names pass through verbatim
	result := Parse(sampleHeader)

	require.Len(t, result.Modules, 3)
	assert.Equal(t, "UIA_ButtonControlTypeId", result.Modules[0].Constants[0].Name)
}

func TestParse_NoMarkers(t *testing.T) {
	result := Parse("const long Orphan = 1;\nint unrelated = 2;\n")

	assert.Empty(t, result.Modules)
}

func TestParse_EmptyInput(t *testing.T) {
	result := Parse("")

	assert.Empty(t, result.Modules)
}

func TestParse_ConstantBeforeFirstMarkerIgnored(t *testing.T) {
	input := `const long BeforeAnyModule = 1;
/* module Things */
const long Inside = 2;
`
	result := Parse(input)

	require.Len(t, result.Modules, 1)
	require.Len(t, result.Modules[0].Constants, 1)
	assert.Equal(t, "Inside", result.Modules[0].Constants[0].Name)
}

func TestParse_FlexibleWhitespace(t *testing.T) {
	input := "/* module Mixed */\nconst\tlong\tTabbed\t=\t7;\nconst  long  Spaced  =  8;\nconst long Tight= 9;\n"
	result := Parse(input)

	require.Len(t, result.Modules, 1)
	require.Len(t, result.Modules[0].Constants, 3)
	assert.Equal(t, Constant{Name: "Tabbed", Value: "7"}, result.Modules[0].Constants[0])
	assert.Equal(t, Constant{Name: "Spaced", Value: "8"}, result.Modules[0].Constants[1])
	assert.Equal(t, Constant{Name: "Tight", Value: "9"}, result.Modules[0].Constants[2])
}

func TestParse_NonDecimalValueNotMatched(t *testing.T) {
	input := `/* module Odd */
const long Hex = 0x10;
const long Negative = -5;
const long Plain = 10;
`
	result := Parse(input)

	require.Len(t, result.Modules, 1)
	require.Len(t, result.Modules[0].Constants, 1)
	assert.Equal(t, "Plain", result.Modules[0].Constants[0].Name)
}

func TestParse_ValuePreservedVerbatim(t *testing.T) {
	// No numeric parsing: values wider than any integer type survive as text
	input := "/* module Big */\nconst long Huge = 99999999999999999999999999;\n"
	result := Parse(input)

	require.Len(t, result.Modules, 1)
	assert.Equal(t, "99999999999999999999999999", result.Modules[0].Constants[0].Value)
}

func TestParse_Idempotent(t *testing.T) {
	first := Parse(sampleHeader)
	second := Parse(sampleHeader)

	assert.Equal(t, first, second)
}

func TestParse_DuplicateConstantsNotDeduplicated(t *testing.T) {
	input := `/* module Dups */
const long Same = 1;
const long Same = 2;
`
	result := Parse(input)

	require.Len(t, result.Modules, 1)
	require.Len(t, result.Modules[0].Constants, 2)
	assert.Equal(t, "1", result.Modules[0].Constants[0].Value)
	assert.Equal(t, "2", result.Modules[0].Constants[1].Value)
}
