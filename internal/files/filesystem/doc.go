// Package filesystem provides the file access abstraction the loader reads
// its names file through.
//
// Key interfaces:
//   - FileSystemProvider: opens, reads and stats files
//   - FileInfo: file metadata, an alias of fs.FileInfo
//
// Implementations:
//   - OSFileSystem: production implementation using the OS filesystem
//   - MemoryFileSystem: in-memory implementation for testing
package filesystem
