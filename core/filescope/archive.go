package filescope

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/interchange/core/errors"
)

// ArchiveSaveContext collects file content and writes it to a tar.xz archive
// on Flush. Each entry is stored under its content identifier so the archive
// can be unpacked by ArchiveLoadContext on another machine.
type ArchiveSaveContext struct {
	path    string
	entries map[string]archiveEntry
	order   []string
}

type archiveEntry struct {
	name string
	data []byte
}

// NewArchiveSaveContext creates a save context that will write to path.
func NewArchiveSaveContext(path string) *ArchiveSaveContext {
	return &ArchiveSaveContext{
		path:    path,
		entries: make(map[string]archiveEntry),
	}
}

func (c *ArchiveSaveContext) SaveFile(source string, id string) (string, error) {
	if source == "" {
		return "", errors.NewInvalidValue("cannot save a file value with no content")
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}
	if id == "" {
		id = uuid.NewString()
	}
	c.entries[id] = archiveEntry{name: filepath.Base(source), data: data}
	c.order = append(c.order, id)
	return id, nil
}

// Flush writes the archive. The file is replaced atomically so a crash mid
// write never leaves a truncated archive behind.
func (c *ArchiveSaveContext) Flush() error {
	tempFile, err := os.CreateTemp(filepath.Dir(c.path), ".archive-*")
	if err != nil {
		return fmt.Errorf("failed to create temp archive: %w", err)
	}
	tempPath := tempFile.Name()

	xzw, err := xz.NewWriter(tempFile)
	if err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	tw := tar.NewWriter(xzw)

	for _, id := range c.order {
		entry, ok := c.entries[id]
		if !ok {
			continue
		}
		hdr := &tar.Header{
			Name:    id + "/" + entry.name,
			Mode:    0644,
			Size:    int64(len(entry.data)),
			ModTime: time.Now(),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			tw.Close()
			xzw.Close()
			tempFile.Close()
			os.Remove(tempPath)
			return fmt.Errorf("failed to write archive header: %w", err)
		}
		if _, err := tw.Write(entry.data); err != nil {
			tw.Close()
			xzw.Close()
			tempFile.Close()
			os.Remove(tempPath)
			return fmt.Errorf("failed to write archive entry: %w", err)
		}
	}

	if err := tw.Close(); err != nil {
		xzw.Close()
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to close tar writer: %w", err)
	}
	if err := xzw.Close(); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to close xz writer: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp archive: %w", err)
	}
	if err := os.Rename(tempPath, c.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename archive: %w", err)
	}
	return nil
}

func (c *ArchiveSaveContext) Close() error {
	if len(c.order) == 0 {
		return nil
	}
	return c.Flush()
}

// ArchiveLoadContext reads file content out of a tar.xz archive written by
// ArchiveSaveContext. Entries are extracted lazily into a scratch directory
// that lives until Close.
type ArchiveLoadContext struct {
	path    string
	scratch string
	files   map[string]string
}

// NewArchiveLoadContext creates a load context over the archive at path.
func NewArchiveLoadContext(path string) *ArchiveLoadContext {
	return &ArchiveLoadContext{path: path}
}

func (c *ArchiveLoadContext) LoadFile(id string) (string, error) {
	if id == "" {
		return "", ErrInvalidContentID
	}
	if c.files == nil {
		if err := c.extract(); err != nil {
			return "", err
		}
	}
	path, ok := c.files[id]
	if !ok {
		return "", ErrContentNotFound
	}
	return path, nil
}

func (c *ArchiveLoadContext) extract() error {
	f, err := os.Open(c.path)
	if err != nil {
		return err
	}
	defer f.Close()

	xzr, err := xz.NewReader(f)
	if err != nil {
		return fmt.Errorf("failed to create xz reader: %w", err)
	}
	tr := tar.NewReader(xzr)

	scratch, err := os.MkdirTemp("", "interchange-archive-*")
	if err != nil {
		return err
	}
	c.scratch = scratch
	c.files = make(map[string]string)

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read archive: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		id, name := filepath.Split(filepath.Clean(hdr.Name))
		id = filepath.Clean(id)
		if id == "." || id == "" || name == "" || strings.Contains(id, "..") {
			continue
		}
		dir := filepath.Join(scratch, id)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		dest := filepath.Join(dir, name)
		data, err := io.ReadAll(tr)
		if err != nil {
			return fmt.Errorf("failed to read archive entry %s: %w", hdr.Name, err)
		}
		if err := os.WriteFile(dest, data, 0644); err != nil {
			return err
		}
		c.files[id] = dest
	}
	return nil
}

func (c *ArchiveLoadContext) Flush() error { return nil }

func (c *ArchiveLoadContext) Close() error {
	if c.scratch != "" {
		err := os.RemoveAll(c.scratch)
		c.scratch = ""
		c.files = nil
		return err
	}
	return nil
}
