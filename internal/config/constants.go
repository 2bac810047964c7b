package config

// Version is the current curse compiler version.
// Set at build time via -ldflags or by writing to this file.
var Version = "0.1.0"

const SourceFileExt = ".cur"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".cur", ".curse"}

// TrimSourceExt removes any recognized source extension from a filename.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if the path ends with any recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsTestMode indicates if the program is running in test mode.
var IsTestMode = false

// Built-in global names seeded into every Scope before user definitions are lowered.
const (
	InFuncName    = "in"
	PrintFuncName = "print"
)

// Reserved-but-unimplemented symbols. Lowering these emits a structured
// "unimplemented" diagnostic instead of guessing semantics.
const (
	SeqSymbol   = ";"
	RangeSymbol = ".."
)
