package values

import (
	"github.com/google/uuid"

	"github.com/FocuswithJustin/interchange/core/vartype"
)

// Well-known MIME types for file values.
const (
	BinaryMimeType = "application/octet-stream"
	TextMimeType   = "text/plain"
)

// FileValue references externally stored file content. The value itself
// carries only the original file name, the MIME type, an optional text
// encoding, and a content identifier; the content is resolved lazily through
// a save/load context and is never copied into the value.
//
// FileValue instances are created through a filescope.FileScope.
type FileValue struct {
	id           uuid.UUID
	originalPath string
	mimeType     string
	encoding     string
}

// NewFile constructs a file value referencing the given path. A zero id
// generates a fresh identifier.
func NewFile(originalPath, mimeType, encoding string, id uuid.UUID) FileValue {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return FileValue{
		id:           id,
		originalPath: originalPath,
		mimeType:     mimeType,
		encoding:     encoding,
	}
}

// EmptyFile returns the file value with no content.
func EmptyFile() FileValue { return FileValue{} }

// Type returns vartype.File.
func (FileValue) Type() vartype.VariableType { return vartype.File }

// Clone returns the value itself; file values are immutable.
func (v FileValue) Clone() Value { return v }

// Equal reports whether other is a FileValue with the same content identifier.
// Two file values referencing distinct copies of identical bytes are not equal.
func (v FileValue) Equal(other Value) bool {
	o, ok := other.(FileValue)
	return ok && v.id == o.id
}

// ID returns the identifier that correlates this value with stored content.
func (v FileValue) ID() uuid.UUID { return v.id }

// OriginalPath returns the name of the file that was wrapped, if known.
func (v FileValue) OriginalPath() string { return v.originalPath }

// MimeType returns the MIME type of the content.
func (v FileValue) MimeType() string { return v.mimeType }

// Encoding returns the text encoding of the content, or "" for binary content.
func (v FileValue) Encoding() string { return v.encoding }

// HasContent reports whether the value references any content at all.
func (v FileValue) HasContent() bool { return v.originalPath != "" }
