// Package files groups the input-side packages of the loader.
//
// Sub-packages:
//   - filesystem: file access abstraction (OS and in-memory)
//   - lines: lazy line-by-line reading with terminator stripping
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/loadnames/internal/files/filesystem"
//	    "github.com/vvka-141/loadnames/internal/files/lines"
//	)
//
//	fsProvider := filesystem.NewOSFileSystem()
//	f, err := fsProvider.OpenFile("names.txt")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	seq := lines.NewSequence(f)
//	for seq.Next() {
//	    fmt.Println(seq.Number(), seq.Text())
//	}
//	return seq.Err()
package files
