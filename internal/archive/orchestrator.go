package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/alidmz/txndoc-tools/internal/gen"
	"github.com/alidmz/txndoc-tools/internal/storage"
	"github.com/alidmz/txndoc-tools/pkg/logger"
)

// Folders archived per run, in processing order.
var archiveFolders = []string{gen.OpeningFolder, gen.CustomerFolder}

// FolderStats describes the outcome for one folder prefix.
type FolderStats struct {
	Files       int
	ArchivePath string
	ArchiveSize int64
}

// Stats is the structured result of one archiver run.
type Stats struct {
	Month      string
	Folders    map[string]FolderStats
	TotalFiles int
}

// Archiver packages the previous month's files into one ZIP per folder.
// store is only consulted when uploads are requested and may be nil for
// local-mode runs.
type Archiver struct {
	source    Source
	store     storage.ObjectStorage
	outputDir string
}

func NewArchiver(source Source, store storage.ObjectStorage, outputDir string) *Archiver {
	return &Archiver{
		source:    source,
		store:     store,
		outputDir: outputDir,
	}
}

// Run archives the calendar month preceding ref. Strictly sequential: the
// first unhandled error aborts the run; ZIPs already written stay on disk.
func (a *Archiver) Run(ctx context.Context, ref time.Time, upload bool) (*Stats, error) {
	start, end := PreviousMonth(Rebase(ref, a.source.Location()))
	month := start.Format("2006-01")

	logger.Log.Info().
		Str("month", month).
		Time("start", start).
		Time("end", end).
		Msg("archiving previous month")

	if err := os.MkdirAll(a.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", a.outputDir, err)
	}

	stats := &Stats{Month: month, Folders: make(map[string]FolderStats)}
	for _, folder := range archiveFolders {
		folderStats, err := a.archiveFolder(ctx, folder, month, start, end)
		if err != nil {
			return nil, err
		}
		stats.Folders[folder] = folderStats
		stats.TotalFiles += folderStats.Files
	}

	if upload && a.store != nil {
		if err := a.uploadArchives(ctx, stats); err != nil {
			return nil, err
		}
	}

	logger.Log.Info().
		Str("month", month).
		Int("opening_files", stats.Folders[gen.OpeningFolder].Files).
		Int("customer_files", stats.Folders[gen.CustomerFolder].Files).
		Int("total_files", stats.TotalFiles).
		Msg("archive run complete")

	return stats, nil
}

// archiveFolder selects and packages one folder. The download workspace is
// scoped to this call and released once the ZIP is closed, on every exit
// path.
func (a *Archiver) archiveFolder(ctx context.Context, folder, month string, start, end time.Time) (FolderStats, error) {
	files, err := a.source.Select(ctx, folder, start, end)
	if err != nil {
		return FolderStats{}, fmt.Errorf("select %s files: %w", folder, err)
	}
	logger.Log.Info().Str("folder", folder).Int("files", len(files)).Msg("selection complete")

	if len(files) == 0 {
		return FolderStats{}, nil
	}

	ws, err := NewWorkspace()
	if err != nil {
		return FolderStats{}, err
	}
	defer func() {
		if err := ws.Close(); err != nil {
			logger.Log.Warn().Err(err).Str("folder", folder).Msg("failed to remove workspace")
		}
	}()

	zipName := fmt.Sprintf("%s_%s.zip", folder, month)
	zipPath := filepath.Join(a.outputDir, zipName)
	count, err := WriteZip(ctx, a.source, ws, files, zipPath)
	if err != nil {
		return FolderStats{}, err
	}

	info, err := os.Stat(zipPath)
	if err != nil {
		return FolderStats{}, fmt.Errorf("stat archive %s: %w", zipPath, err)
	}

	logger.Log.Info().
		Str("archive", zipName).
		Int("files", count).
		Str("size", humanize.IBytes(uint64(info.Size()))).
		Msg("archive created")

	return FolderStats{
		Files:       count,
		ArchivePath: zipPath,
		ArchiveSize: info.Size(),
	}, nil
}

// uploadArchives pushes every produced ZIP to the archives/ prefix of the
// source bucket, named after the local archive file.
func (a *Archiver) uploadArchives(ctx context.Context, stats *Stats) error {
	for _, folder := range archiveFolders {
		folderStats := stats.Folders[folder]
		if folderStats.ArchivePath == "" {
			continue
		}
		key := "archives/" + filepath.Base(folderStats.ArchivePath)
		if err := a.store.UploadFile(ctx, key, folderStats.ArchivePath, nil); err != nil {
			return fmt.Errorf("upload archive %s: %w", key, err)
		}
		logger.Log.Info().Str("key", key).Msg("archive uploaded")
	}
	return nil
}
