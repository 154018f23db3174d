package device

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gymtrack/internal/filex"
)

// OSFileStat implements FileStat against the local filesystem.
type OSFileStat struct{}

func (OSFileStat) Size(ref FileRef) (int64, error) {
	return filex.FileSize(ref.Path)
}

// PathPicker is the terminal stand-in for a native image picker: the user
// already typed a path and the picker only has to resolve it. An empty
// path reports ErrCanceled, a missing file an error.
type PathPicker struct {
	Path string
}

func (p PathPicker) Pick(ctx context.Context) (FileRef, error) {
	if p.Path == "" {
		return FileRef{}, ErrCanceled
	}
	if _, err := os.Stat(p.Path); err != nil {
		return FileRef{}, fmt.Errorf("resolve image %s: %w", p.Path, err)
	}
	return RefForPath(p.Path), nil
}
