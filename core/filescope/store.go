package filescope

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/zeebo/blake3"
)

// ErrContentNotFound is returned when no content exists for an identifier.
var ErrContentNotFound = errors.New("file content not found")

// ErrInvalidContentID is returned when an identifier cannot name stored content.
var ErrInvalidContentID = errors.New("invalid content identifier")

// hashPattern matches a lowercase BLAKE3 hex digest (64 characters).
var hashPattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// contentStore is content-addressed storage for file value payloads.
// Blobs are stored by their BLAKE3 hash, deduplicating identical content,
// and value identifiers are bound to hashes through small alias files so a
// file value can be resolved without rehashing.
type contentStore struct {
	root string
}

// newContentStore creates a content store rooted at the given directory,
// creating the layout if it does not exist.
func newContentStore(root string) (*contentStore, error) {
	for _, dir := range []string{
		filepath.Join(root, "content", "blake3"),
		filepath.Join(root, "ids"),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}
	return &contentStore{root: root}, nil
}

// put stores data and returns its BLAKE3 hash. Storing content that already
// exists is a no-op.
func (s *contentStore) put(data []byte) (string, error) {
	h := blake3.Sum256(data)
	hash := hex.EncodeToString(h[:])

	blobPath := s.pathForHash(hash)
	if _, err := os.Stat(blobPath); err == nil {
		return hash, nil
	}

	prefixDir := filepath.Dir(blobPath)
	if err := os.MkdirAll(prefixDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create prefix directory: %w", err)
	}

	// Write atomically through a temp file so readers never observe a
	// partially written blob.
	tempFile, err := os.CreateTemp(prefixDir, ".blob-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to write content: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tempPath, blobPath); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to rename content: %w", err)
	}

	return hash, nil
}

// bind records that the given value identifier names the given hash.
func (s *contentStore) bind(id, hash string) error {
	if id == "" {
		return ErrInvalidContentID
	}
	aliasPath := filepath.Join(s.root, "ids", id)
	tempFile, err := os.CreateTemp(filepath.Dir(aliasPath), ".id-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()
	if _, err := tempFile.WriteString(hash); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write alias: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tempPath, aliasPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename alias: %w", err)
	}
	return nil
}

// resolve maps an identifier to the on-disk path of its content. The
// identifier may be a BLAKE3 hash or a bound value identifier.
func (s *contentStore) resolve(id string) (string, error) {
	if id == "" {
		return "", ErrInvalidContentID
	}
	hash := id
	if !hashPattern.MatchString(id) {
		data, err := os.ReadFile(filepath.Join(s.root, "ids", id))
		if err != nil {
			if os.IsNotExist(err) {
				return "", ErrContentNotFound
			}
			return "", fmt.Errorf("failed to read alias: %w", err)
		}
		hash = string(data)
		if !hashPattern.MatchString(hash) {
			return "", ErrInvalidContentID
		}
	}
	blobPath := s.pathForHash(hash)
	if _, err := os.Stat(blobPath); err != nil {
		if os.IsNotExist(err) {
			return "", ErrContentNotFound
		}
		return "", err
	}
	return blobPath, nil
}

// pathForHash returns the blob path: <root>/content/blake3/<first2>/<hash>.
func (s *contentStore) pathForHash(hash string) string {
	return filepath.Join(s.root, "content", "blake3", hash[:2], hash)
}
