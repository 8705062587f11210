package service

import (
	"context"
	"io"
)

// Uploader stores an image (avatar, project screenshot) with an external
// media host and returns its public URL. Portfolio state itself never
// touches the uploader; only the URL lands in the store.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
