package storage

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"
)

// SyncResult reports what a directory push moved.
type SyncResult struct {
	Files int
	Bytes int64
}

// SyncDirectory mirrors localDir into the store with one-way push
// semantics: every local file is uploaded under its slash-relative key,
// overwriting what is there. Objects present remotely but absent locally
// are left alone. Each upload carries the file's modification time as
// original-timestamp user metadata so later month selection can use the
// document's own date rather than the upload date. No retries; the first
// failure aborts the sync.
func SyncDirectory(ctx context.Context, store ObjectStorage, localDir string) (SyncResult, error) {
	var result SyncResult

	err := filepath.WalkDir(localDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(localDir, path)
		if err != nil {
			return fmt.Errorf("relativize %s: %w", path, err)
		}
		key := filepath.ToSlash(rel)

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		metadata := map[string]string{
			MetadataTimestampKey: FormatTimestamp(info.ModTime()),
		}
		if err := store.UploadFile(ctx, key, path, metadata); err != nil {
			return err
		}

		result.Files++
		result.Bytes += info.Size()
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("sync %s: %w", localDir, err)
	}
	return result, nil
}

// FormatTimestamp renders t in the original-timestamp metadata format.
func FormatTimestamp(t time.Time) string {
	return t.Format(MetadataTimestampLayout)
}
