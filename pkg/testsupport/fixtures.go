// Package testsupport provides disk-backed stand-ins for the remote content
// store so tests can ingest realistic recipe trees from testdata.
package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

// LoadFixture reads a fixture file.
func LoadFixture(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// LoadGolden decodes the JSON file at path into v.
func LoadGolden(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// FixtureStore implements interfaces.ContentStore over a directory laid out
// like the repository: {root}/{id}/{document}. Owner, store and ref are
// ignored.
type FixtureStore struct {
	fsys fs.FS
}

var _ interfaces.ContentStore = (*FixtureStore)(nil)

// NewFixtureStore serves the tree under dir.
func NewFixtureStore(dir string) *FixtureStore {
	return &FixtureStore{fsys: os.DirFS(dir)}
}

// NewFixtureStoreFS serves fsys, e.g. a testing/fstest.MapFS.
func NewFixtureStoreFS(fsys fs.FS) *FixtureStore {
	return &FixtureStore{fsys: fsys}
}

// ListDirectory lists root in name order.
func (s *FixtureStore) ListDirectory(ctx context.Context, _, _, root string) ([]interfaces.DirectoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(s.fsys, root)
	if err != nil {
		return nil, notFound(err)
	}
	out := make([]interfaces.DirectoryEntry, 0, len(entries))
	for _, entry := range entries {
		kind := "file"
		if entry.IsDir() {
			kind = interfaces.EntryTypeDir
		}
		out = append(out, interfaces.DirectoryEntry{
			Name: entry.Name(),
			Path: path.Join(root, entry.Name()),
			Type: kind,
		})
	}
	return out, nil
}

// FetchDocument returns the document text.
func (s *FixtureStore) FetchDocument(ctx context.Context, ref interfaces.DocumentRef) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := fs.ReadFile(s.fsys, path.Join(ref.Root, ref.ID, ref.Name))
	if err != nil {
		return "", notFound(err)
	}
	return string(data), nil
}

func notFound(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", interfaces.ErrNotFound, err)
	}
	return err
}
