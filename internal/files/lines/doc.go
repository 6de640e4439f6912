// Package lines reads newline-delimited input one line at a time.
//
// A Sequence is lazy and single-pass: each call to Next reads just enough of
// the underlying reader to produce one line, and a consumed Sequence cannot
// be restarted. Exactly one trailing line terminator ("\r\n", "\n" or "\r")
// is removed from each line; all other whitespace is preserved.
//
// The final line is produced even when the input does not end with a
// newline, and an empty input produces no lines.
package lines
