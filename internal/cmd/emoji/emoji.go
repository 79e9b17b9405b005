// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all commands.
package emoji

// Symbol constants for CLI output.
const (
	// Success marks a completed operation or a fully translated locale.
	Success = "✓"

	// Error marks a failed operation or a file that could not be read.
	Error = "✗"

	// Warning marks a skipped file or a non-critical problem.
	Warning = "!"

	// Missing marks a key the target locale lacks.
	Missing = "-"

	// Added marks a key written to a target file.
	Added = "+"

	// Removed marks an orphaned key removed from a target file.
	Removed = "×"

	// Unknown represents unknown or indeterminate states.
	Unknown = "?"

	// Info represents informational messages.
	Info = "i"

	// Hint prefixes actionable guidance.
	Hint = "→"
)
