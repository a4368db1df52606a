package storage

import (
	"context"
	"time"
)

// MetadataTimestampKey is the user-metadata field carrying a document's
// original timestamp, formatted as 2006-01-02T15:04:05 with no offset.
const MetadataTimestampKey = "original-timestamp"

// MetadataTimestampLayout is the wire format of MetadataTimestampKey values.
const MetadataTimestampLayout = "2006-01-02T15:04:05"

// ObjectInfo represents metadata for a remote file/object.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
	Metadata     map[string]string
}

// ObjectStorage captures the S3-compatible operations the tools need.
type ObjectStorage interface {
	// ListObjects lists all objects under prefix, recursively.
	ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error)
	// StatObject fetches a single object's metadata without its content.
	StatObject(ctx context.Context, key string) (ObjectInfo, error)
	// DownloadObject downloads an object to the provided destination path,
	// creating parent directories as needed.
	DownloadObject(ctx context.Context, key string, destPath string) error
	// UploadFile uploads a local file under key, overwriting any existing
	// object. metadata may be nil.
	UploadFile(ctx context.Context, key string, srcPath string, metadata map[string]string) error
}
