// Package logging provides concrete implementations of the loadnames.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr with thread-safe output
//   - NullLogger: Discards all messages (useful for testing)
//
// When stderr is a terminal, ConsoleLogger colors its [VERBOSE] and [ERROR]
// prefixes. Color is disabled by NO_COLOR, CI or LOADNAMES_NO_COLOR=1.
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
