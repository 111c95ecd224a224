package filescope

import (
	"os"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/interchange/core/errors"
	"github.com/FocuswithJustin/interchange/core/values"
)

// NonManagingScope is a file scope that performs no content management at
// all. Values refer directly to files the caller owns, the save context
// hands back the source path as the content identifier, and the load
// context treats identifiers as paths. Useful when producer and consumer
// share a filesystem.
type NonManagingScope struct{}

// NewNonManagingScope returns a scope that leaves file lifetime to the caller.
func NewNonManagingScope() *NonManagingScope { return &NonManagingScope{} }

func (s *NonManagingScope) ReadFromFile(path, mimeType, encoding string) (values.FileValue, error) {
	if path == "" {
		return values.EmptyFile(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return values.FileValue{}, err
	}
	return values.NewFile(path, mimeType, encoding, uuid.Nil), nil
}

func (s *NonManagingScope) Close() error { return nil }

// SaveContext returns the pass-through save context for this scope.
func (s *NonManagingScope) SaveContext() SaveContext { return passThroughContext{} }

// LoadContext returns the pass-through load context for this scope.
func (s *NonManagingScope) LoadContext() LoadContext { return passThroughContext{} }

// passThroughContext implements both context interfaces by treating content
// identifiers as filesystem paths.
type passThroughContext struct{}

func (passThroughContext) SaveFile(source string, id string) (string, error) {
	if source == "" {
		return "", errors.NewInvalidValue("cannot save a file value with no content")
	}
	return source, nil
}

func (passThroughContext) LoadFile(id string) (string, error) {
	if id == "" {
		return "", errors.NewInvalidValue("cannot load a file value with no content")
	}
	return id, nil
}

func (passThroughContext) Flush() error { return nil }
func (passThroughContext) Close() error { return nil }
