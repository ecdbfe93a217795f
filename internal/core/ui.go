package core

import "io"

// UI defines the interface for user-facing output, kept apart from the
// structured Logger so commands can print reports without log decoration.
type UI interface {
	// Title prints a main title.
	Title(title string)
	// Success prints a success message.
	Success(msg string)
	// Info prints an informational message.
	Info(msg string)
	// Warning prints a warning message.
	Warning(msg string)
	// Error prints an error message.
	Error(msg string)
	// Printf prints a formatted message to the output writer.
	Printf(format string, args ...interface{})
	// Println prints a line to the output writer.
	Println(args ...interface{})
	// WithWriter returns a new UI instance writing to the specified writer.
	WithWriter(w io.Writer) UI
}
