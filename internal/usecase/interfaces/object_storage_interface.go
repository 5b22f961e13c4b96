package interfaces

import (
	"context"
	"io"
)

// ProgressFunc receives the number of bytes sent so far and the total size
// (-1 when unknown).
type ProgressFunc func(sent, total int64)

// IObjectStorage abstracts the bucket holding client uploads, deliverables
// and chat attachments.
type IObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64, progress ProgressFunc) (string, error)
	DownloadURL(ctx context.Context, key string) (string, error)
}
