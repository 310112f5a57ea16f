package batch

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FS is a walkable tree of files. Paths handed to the walk function must be
// the same names the engine's byte source resolves.
type FS interface {
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// LocalFS walks the local filesystem.
type LocalFS struct{}

func (l *LocalFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// DirReader is the directory-listing subset of *smb2.Share the walker
// needs.
type DirReader interface {
	ReadDir(path string) ([]os.FileInfo, error)
}

// SMBFS walks a mounted SMB share with share-relative, slash-separated
// paths.
type SMBFS struct {
	Share DirReader
}

func (s *SMBFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	return s.walk(root, fn)
}

func (s *SMBFS) walk(path string, fn fs.WalkDirFunc) error {
	if path == "" {
		path = "."
	}

	infos, err := s.Share.ReadDir(path)
	if err != nil {
		return fn(path, nil, err)
	}

	for _, info := range infos {
		name := info.Name()
		if name == "." || name == ".." {
			continue
		}

		fullPath := filepath.Join(path, name)
		fullPath = strings.ReplaceAll(fullPath, "\\", "/")

		d := fs.FileInfoToDirEntry(info)

		if err := fn(fullPath, d, nil); err != nil {
			if err == fs.SkipDir {
				// Same contract as filepath.WalkDir: for a directory only
				// its contents are skipped, siblings keep walking; for a
				// file the rest of the containing directory is skipped.
				if info.IsDir() {
					continue
				}
				return nil
			}
			return err
		}

		if info.IsDir() {
			// Do not follow reparse points (junctions)
			if info.Mode()&os.ModeSymlink != 0 {
				continue
			}
			if err := s.walk(fullPath, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
