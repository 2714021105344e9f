package contracts

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	UploadFile(ctx context.Context, file io.Reader, size int64, objectName, contentType string) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error)
	DeleteFile(ctx context.Context, objectName string) error
}
