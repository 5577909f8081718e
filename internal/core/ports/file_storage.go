package ports

import (
	"context"
	"io"
)

// FileStorage stores uploaded images and returns their public URL.
type FileStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
