// Package storage keeps uploaded avatar images on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gymtrack/internal/filex"
)

// AvatarStore writes avatar files into a directory, one file per upload,
// named <uuid><ext> so successive uploads never collide.
type AvatarStore struct {
	dir string
}

// NewAvatarStore ensures the directory exists. Relative names are created
// under the working directory; absolute paths are used as-is.
func NewAvatarStore(dirName string) (*AvatarStore, error) {
	if filepath.IsAbs(dirName) {
		if err := os.MkdirAll(dirName, 0o770); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dirName, err)
		}
		return &AvatarStore{dir: dirName}, nil
	}

	dir, err := filex.EnsureSubDir(dirName)
	if err != nil {
		return nil, err
	}
	return &AvatarStore{dir: dir}, nil
}

// Save stores the uploaded content and returns the generated filename,
// which becomes the user's avatar reference.
func (s *AvatarStore) Save(originalName string, content io.Reader) (string, error) {
	name := uuid.NewString() + filepath.Ext(originalName)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create avatar file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("write avatar file: %w", err)
	}
	return name, nil
}

// Remove deletes a previously saved avatar file. A missing file is not an
// error; the reference may predate a wiped directory.
func (s *AvatarStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove avatar file: %w", err)
	}
	return nil
}
