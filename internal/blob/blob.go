package blob

import (
	"context"
	"io"
)

// File is an uploaded file ready to be persisted.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Store persists uploaded binaries and returns opaque locators. Locators are
// what gets stored on the owning record and must round-trip through Delete.
type Store interface {
	Save(ctx context.Context, dir string, file File) (string, error)
	Delete(ctx context.Context, locator string) error
}
