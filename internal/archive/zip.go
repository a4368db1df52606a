package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
)

// WriteZip builds a deflate-compressed ZIP at zipPath containing each
// selected file at its original relative key, preserving the folder
// subtree layout. Remote files are staged through the workspace first.
// An empty input creates no file and reports zero; a failure mid-write
// leaves the partial ZIP on disk (the run as a whole is still failed).
// Returns the number of files written into the archive.
func WriteZip(ctx context.Context, src Source, ws *Workspace, files []SelectedFile, zipPath string) (int, error) {
	if len(files) == 0 {
		return 0, nil
	}

	out, err := os.Create(zipPath)
	if err != nil {
		return 0, fmt.Errorf("create archive %s: %w", zipPath, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, file := range files {
		localPath, err := src.Resolve(ctx, ws, file.Key)
		if err != nil {
			zw.Close()
			return 0, fmt.Errorf("stage %s: %w", file.Key, err)
		}
		if err := addEntry(zw, localPath, file.Key); err != nil {
			zw.Close()
			return 0, err
		}
	}

	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("finalize archive %s: %w", zipPath, err)
	}
	return len(files), nil
}

func addEntry(zw *zip.Writer, localPath, name string) error {
	in, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", localPath, err)
	}
	defer in.Close()

	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create entry %s: %w", name, err)
	}
	if _, err := io.Copy(w, in); err != nil {
		return fmt.Errorf("write entry %s: %w", name, err)
	}
	return nil
}
