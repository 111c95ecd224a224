package filescope

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/interchange/core/errors"
	"github.com/FocuswithJustin/interchange/core/values"
)

// DirectoryScope is a file scope that copies content into a managed,
// content-addressed directory. Identical files share storage, values stay
// readable for the lifetime of the scope regardless of what happens to the
// source files, and the same directory doubles as the save medium.
type DirectoryScope struct {
	store *contentStore
	root  string
	owned bool
}

// NewDirectoryScope opens a managed scope rooted at dir. Passing an empty
// dir creates a temporary directory that is removed on Close.
func NewDirectoryScope(dir string) (*DirectoryScope, error) {
	owned := false
	if dir == "" {
		tmp, err := os.MkdirTemp("", "interchange-scope-*")
		if err != nil {
			return nil, fmt.Errorf("failed to create scope directory: %w", err)
		}
		dir = tmp
		owned = true
	}
	store, err := newContentStore(dir)
	if err != nil {
		if owned {
			os.RemoveAll(dir)
		}
		return nil, err
	}
	return &DirectoryScope{store: store, root: dir, owned: owned}, nil
}

func (s *DirectoryScope) ReadFromFile(path, mimeType, encoding string) (values.FileValue, error) {
	if path == "" {
		return values.EmptyFile(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return values.FileValue{}, err
	}
	hash, err := s.store.put(data)
	if err != nil {
		return values.FileValue{}, err
	}
	id := uuid.New()
	if err := s.store.bind(id.String(), hash); err != nil {
		return values.FileValue{}, err
	}
	// The value points at the stored copy, not the caller's file, so the
	// source may be deleted or rewritten without invalidating the value.
	return values.NewFile(s.store.pathForHash(hash), mimeType, encoding, id), nil
}

func (s *DirectoryScope) Close() error {
	if s.owned {
		return os.RemoveAll(s.root)
	}
	return nil
}

// Root returns the directory backing this scope.
func (s *DirectoryScope) Root() string { return s.root }

// SaveContext returns a save context writing into the scope's store.
func (s *DirectoryScope) SaveContext() SaveContext { return &directoryContext{store: s.store} }

// LoadContext returns a load context reading from the scope's store.
func (s *DirectoryScope) LoadContext() LoadContext { return &directoryContext{store: s.store} }

// directoryContext saves and loads file content through a contentStore.
type directoryContext struct {
	store *contentStore
}

func (c *directoryContext) SaveFile(source string, id string) (string, error) {
	if source == "" {
		return "", errors.NewInvalidValue("cannot save a file value with no content")
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}
	hash, err := c.store.put(data)
	if err != nil {
		return "", err
	}
	if id == "" {
		return hash, nil
	}
	if err := c.store.bind(id, hash); err != nil {
		return "", err
	}
	return id, nil
}

func (c *directoryContext) LoadFile(id string) (string, error) {
	path, err := c.store.resolve(id)
	if err != nil {
		return "", err
	}
	return filepath.Clean(path), nil
}

func (c *directoryContext) Flush() error { return nil }
func (c *directoryContext) Close() error { return nil }
