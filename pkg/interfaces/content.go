package interfaces

import (
	"context"
	"errors"
)

// EntryTypeDir is the directory entry type reported by the content store.
const EntryTypeDir = "dir"

// DirectoryEntry is a single item returned by a content store listing.
type DirectoryEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// DocumentRef addresses one document: {Root}/{ID}/{Name} at revision Ref of
// the Owner/Store repository.
type DocumentRef struct {
	Owner string
	Store string
	Ref   string
	Root  string
	ID    string
	Name  string
}

// ContentStore is the read-only remote repository holding recipe documents.
// Calls require no credentials.
type ContentStore interface {
	ListDirectory(ctx context.Context, owner, store, root string) ([]DirectoryEntry, error)
	FetchDocument(ctx context.Context, ref DocumentRef) (string, error)
}

// ErrNotFound is matched by store errors for documents that do not exist.
var ErrNotFound = errors.New("not found")
