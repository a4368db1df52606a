package archive

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alidmz/txndoc-tools/internal/storage"
	"github.com/alidmz/txndoc-tools/pkg/logger"
)

// TimestampSource records where a file's effective timestamp came from.
type TimestampSource int

const (
	// SourceLastModified means the store's own last-modified stamp was used.
	SourceLastModified TimestampSource = iota
	// SourceMetadata means an explicit original-timestamp metadata value was
	// used; it always wins over last-modified when present and parseable.
	SourceMetadata
)

func (s TimestampSource) String() string {
	if s == SourceMetadata {
		return "metadata"
	}
	return "last-modified"
}

// SelectedFile is one archivable file together with its resolved effective
// timestamp. Every listed file resolves to exactly one timestamp before
// date-range comparison.
type SelectedFile struct {
	Key       string
	Timestamp time.Time
	Source    TimestampSource
}

// Source enumerates archivable files for a folder and stages them to local
// disk for packaging.
type Source interface {
	// Select returns the files under folder whose effective timestamp falls
	// inside the closed interval [start, end]. Enumeration order is
	// whatever the underlying store yields.
	Select(ctx context.Context, folder string, start, end time.Time) ([]SelectedFile, error)
	// Resolve makes the file available on local disk and returns its path.
	// Remote implementations download into the workspace.
	Resolve(ctx context.Context, ws *Workspace, key string) (string, error)
	// Location is the time zone selection bounds must be expressed in.
	Location() *time.Location
}

// RemoteSource selects files from an object store, preferring each
// object's original-timestamp metadata over its last-modified stamp.
type RemoteSource struct {
	store storage.ObjectStorage
}

func NewRemoteSource(store storage.ObjectStorage) *RemoteSource {
	return &RemoteSource{store: store}
}

func (s *RemoteSource) Location() *time.Location {
	return time.UTC
}

func (s *RemoteSource) Select(ctx context.Context, folder string, start, end time.Time) ([]SelectedFile, error) {
	objects, err := s.store.ListObjects(ctx, folder+"/")
	if err != nil {
		return nil, err
	}

	selected := make([]SelectedFile, 0)
	for _, obj := range objects {
		file := s.effectiveTimestamp(ctx, obj)
		if inRange(file.Timestamp, start, end) {
			selected = append(selected, file)
		}
	}
	return selected, nil
}

// effectiveTimestamp resolves one object's timestamp. Any failure while
// fetching or parsing metadata downgrades that object to its
// last-modified stamp; per-object errors never abort the listing.
func (s *RemoteSource) effectiveTimestamp(ctx context.Context, obj storage.ObjectInfo) SelectedFile {
	st, err := s.store.StatObject(ctx, obj.Key)
	if err != nil {
		logger.Log.Debug().Err(err).Str("key", obj.Key).Msg("metadata lookup failed, using last-modified")
		return SelectedFile{Key: obj.Key, Timestamp: obj.LastModified, Source: SourceLastModified}
	}

	if ts, ok := metadataTimestamp(st.Metadata); ok {
		return SelectedFile{Key: obj.Key, Timestamp: ts, Source: SourceMetadata}
	}

	lastModified := st.LastModified
	if lastModified.IsZero() {
		lastModified = obj.LastModified
	}
	return SelectedFile{Key: obj.Key, Timestamp: lastModified, Source: SourceLastModified}
}

func (s *RemoteSource) Resolve(ctx context.Context, ws *Workspace, key string) (string, error) {
	dest := ws.Path(key)
	if err := s.store.DownloadObject(ctx, key, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// metadataTimestamp extracts and parses the original-timestamp metadata
// value. S3 backends canonicalize user-metadata key casing, so the lookup
// is case-insensitive. The parsed naive value is labeled UTC.
func metadataTimestamp(meta map[string]string) (time.Time, bool) {
	for k, v := range meta {
		if !strings.EqualFold(k, storage.MetadataTimestampKey) {
			continue
		}
		t, err := time.Parse(storage.MetadataTimestampLayout, v)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}

// LocalSource selects files from a local directory tree by modification
// time, compared in local time.
type LocalSource struct {
	baseDir string
}

func NewLocalSource(baseDir string) *LocalSource {
	return &LocalSource{baseDir: baseDir}
}

func (s *LocalSource) Location() *time.Location {
	return time.Local
}

func (s *LocalSource) Select(ctx context.Context, folder string, start, end time.Time) ([]SelectedFile, error) {
	root := filepath.Join(s.baseDir, folder)
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	selected := make([]SelectedFile, 0)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if !inRange(info.ModTime(), start, end) {
			return nil
		}
		rel, err := filepath.Rel(s.baseDir, path)
		if err != nil {
			return err
		}
		selected = append(selected, SelectedFile{
			Key:       filepath.ToSlash(rel),
			Timestamp: info.ModTime(),
			Source:    SourceLastModified,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return selected, nil
}

func (s *LocalSource) Resolve(ctx context.Context, ws *Workspace, key string) (string, error) {
	return filepath.Join(s.baseDir, filepath.FromSlash(key)), nil
}

// inRange reports whether t falls inside the closed interval [start, end].
func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
