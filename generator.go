package hdrgen

// Generator defines the interface for language-specific enum emitters.
// Each target language (Zig, Go, Rust) implements this interface.
type Generator interface {
	// GenerateFile creates a complete output document from a parsed header
	GenerateFile(result *Result) string

	// FileExtension returns the file extension for this language (e.g., "zig", "rs")
	FileExtension() string

	// Language returns the language name (e.g., "zig", "rust")
	Language() string
}
