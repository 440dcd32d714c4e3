package storage

import (
	"context"
)

type Storage interface {
	UploadExport(ctx context.Context, bucketName, fileName, contentType string, body []byte) (string, error)
}
