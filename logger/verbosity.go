package logger

import "go.uber.org/zap/zapcore"

// Verbosity level constants.
//
// Verbosity comes from configuration (HDRGEN_VERBOSITY), not from a CLI
// flag: the tool's argument surface is a single header path.
const (
	VerbosityUser  = 0 // default: warnings and errors only
	VerbosityInfo  = 1 // + parse summary
	VerbosityDebug = 2 // + per-module detail
)

// VerbosityToLevel maps a verbosity setting to a zap log level
//
// Mapping:
//
//	0 (default) -> WarnLevel  (errors and warnings only)
//	1           -> InfoLevel  (+ informational messages)
//	2+          -> DebugLevel (+ debug messages)
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// LevelName returns a human-readable name for a verbosity level
func LevelName(verbosity int) string {
	switch {
	case verbosity <= VerbosityUser:
		return "User"
	case verbosity == VerbosityInfo:
		return "Info"
	default:
		return "Debug"
	}
}
