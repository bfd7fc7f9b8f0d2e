package storage

import (
	"context"
	"io"
)

type Storage interface {
	UploadFile(ctx context.Context, file io.Reader, objectName, contentType string, size int64) (string, error)
}
