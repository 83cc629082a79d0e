// Package storage keeps photo bytes outside the database. Keys are flat
// file names such as "3f0c...e1.png".
package storage

import (
	"context"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is where stored photos are served from.
const URLPrefix = "/uploads/photos/"

type ObjectInfo struct {
	ContentType string
	Size        int64
}

// BlobStore stores opaque objects by key. Get and Delete on an unknown key
// report common.ErrorNotFound; Delete of a missing key is not an error.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error)
	Delete(ctx context.Context, key string) error
}

// Presigner is implemented by stores that can hand out a time-limited
// direct download URL instead of streaming through the server.
type Presigner interface {
	PresignGet(ctx context.Context, key string) (string, error)
}

// NewKey returns a random key keeping the extension of filename, or one
// derived from contentType when filename has none.
func NewKey(filename, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		}
	}
	return uuid.NewString() + ext
}

func PublicURL(key string) string {
	return URLPrefix + key
}
