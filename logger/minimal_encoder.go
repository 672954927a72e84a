package logger

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// Gruvbox-ish palette, kept small: timestamps, component names, warnings,
// errors. Stderr only, so generated output is never polluted.
const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"

	colorTime      = "\x1b[38;5;108m" // muted cyan-green
	colorComponent = "\x1b[38;5;208m" // warm orange
	colorMessage   = "\x1b[38;5;223m" // soft cream
	colorWarn      = "\x1b[38;5;214m" // soft yellow
	colorError     = "\x1b[38;5;167m" // warm red
)

// minimalEncoder implements a calm, compact console encoder.
// Format: "13:04:35  hdrgen  parsed header  modules=3 constants=12"
type minimalEncoder struct {
	zapcore.Encoder // Embed a base encoder for field serialization
}

func newMinimalEncoder() *minimalEncoder {
	// Base JSON encoder for field serialization (internal use only)
	return &minimalEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{Encoder: enc.Encoder.Clone()}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := buffer.NewPool().Get()

	final.AppendString(colorTime)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only shown for WARN and above
	if ent.Level >= zapcore.WarnLevel {
		final.AppendString("  ")
		final.AppendString(levelTag(ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorComponent)
		final.AppendString(ent.LoggerName)
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(colorMessage)
	final.AppendString(ent.Message)
	final.AppendString(colorReset)

	if len(fields) > 0 {
		final.AppendString("  ")
		final.AppendString(formatFields(fields))
	}

	final.AppendString("\n")
	return final, nil
}

// levelTag returns bold + colored level text for WARN and above
func levelTag(level zapcore.Level) string {
	switch level {
	case zapcore.WarnLevel:
		return colorBold + colorWarn + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + colorError + "ERROR" + colorReset
	default:
		return colorBold + colorError + level.CapitalString() + colorReset
	}
}

// formatFields renders structured fields as compact key=value pairs
func formatFields(fields []zapcore.Field) string {
	pairs := make([]string, 0, len(fields))
	for _, f := range fields {
		if v := fieldValue(f); v != "" {
			pairs = append(pairs, f.Key+"="+v)
		}
	}
	return strings.Join(pairs, " ")
}

// fieldValue extracts the value from a zap field, handling the field types
// this tool actually logs
func fieldValue(f zapcore.Field) string {
	switch {
	case f.Type == zapcore.StringType:
		return f.String
	case isIntegerType(f.Type):
		return strconv.FormatInt(f.Integer, 10)
	case f.Interface != nil:
		return fmt.Sprintf("%v", f.Interface)
	}
	return ""
}

func isIntegerType(t zapcore.FieldType) bool {
	switch t {
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return true
	}
	return false
}
