package archive

import (
	"fmt"
	"os"
	"path/filepath"
)

// Workspace is a temporary directory scoped to one archive-assembly run.
// It must be released with Close once the archive is written; callers
// defer Close so the staged downloads are removed on every exit path.
type Workspace struct {
	dir string
}

// NewWorkspace creates a fresh workspace directory.
func NewWorkspace() (*Workspace, error) {
	dir, err := os.MkdirTemp("", "txndoc-archive-")
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &Workspace{dir: dir}, nil
}

// Path maps a slash-separated object key to a path inside the workspace.
func (w *Workspace) Path(key string) string {
	return filepath.Join(w.dir, filepath.FromSlash(key))
}

// Close removes the workspace and everything staged into it.
func (w *Workspace) Close() error {
	return os.RemoveAll(w.dir)
}
