// Package device narrows the host device capabilities the client depends
// on: selecting an image and reading file size metadata. Screens get these
// as interfaces so tests can substitute fakes.
package device

import (
	"context"
	"errors"
	"mime"
	"path/filepath"
)

// ErrCanceled is returned by ImagePicker implementations when the user
// dismissed the selection without choosing a file.
var ErrCanceled = errors.New("image selection canceled")

// FileRef identifies a picked file on the local filesystem.
type FileRef struct {
	Path string
	Name string
	MIME string
}

// ImagePicker selects an image from the device.
type ImagePicker interface {
	Pick(ctx context.Context) (FileRef, error)
}

// FileStat reads size metadata for a picked file.
type FileStat interface {
	Size(ref FileRef) (int64, error)
}

// RefForPath builds a FileRef for a local path, inferring the display name
// and MIME type from the filename. Unknown extensions fall back to
// application/octet-stream.
func RefForPath(path string) FileRef {
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return FileRef{
		Path: path,
		Name: filepath.Base(path),
		MIME: mimeType,
	}
}
