// Package filescope provides the file-content side of the interchange core:
// scopes that create file values and save/load contexts that move file
// content to and from a save medium.
//
// Separating the save medium behind SaveContext and LoadContext lets large
// associated content travel out of band: a context may write to a local blob
// store, a tar.xz archive, a SQLite database, or collect metadata now and
// send bytes on Flush.
package filescope

import "github.com/FocuswithJustin/interchange/core/values"

// SaveContext is an abstraction over a save medium for file content.
//
// SaveFile persists the file at source and returns the identifier under
// which its content can later be loaded. When id is non-empty the context
// must use it; otherwise the context generates one. A context may defer the
// actual data transfer until Flush or Close.
type SaveContext interface {
	SaveFile(source string, id string) (string, error)
	Flush() error
	Close() error
}

// LoadContext is the read side of a save medium. LoadFile resolves a content
// identifier to a readable path on disk.
type LoadContext interface {
	LoadFile(id string) (string, error)
	Flush() error
	Close() error
}

// FileScope creates FileValue instances and controls their lifetime. Values
// created by a scope are only guaranteed usable while the scope is open.
type FileScope interface {
	// ReadFromFile creates a file value backed by the file at path.
	// Passing an empty mimeType stores the value as binary content.
	ReadFromFile(path, mimeType, encoding string) (values.FileValue, error)
	Close() error
}
