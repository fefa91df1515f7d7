package source

import (
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/siherrmann/populationDashboard/helper"
)

// FilesystemMemory implements the Filesystem interface for in-memory file storage using go-billy's memfs
type FilesystemMemory struct {
	fs billy.Filesystem
}

// NewFilesystemMemory creates a new empty in-memory filesystem
func NewFilesystemMemory() *FilesystemMemory {
	return &FilesystemMemory{
		fs: memfs.New(),
	}
}

// Write streams data from reader to a file at the specified path
func (f *FilesystemMemory) Write(path string, reader io.Reader) error {
	file, err := f.fs.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, reader)
	return err
}

// Copy writes every file below root of fsys into the memory filesystem
func (f *FilesystemMemory) Copy(fsys fs.FS, root string) error {
	return fs.WalkDir(fsys, root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}

		file, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		relPath := strings.TrimPrefix(strings.TrimPrefix(path, root), "/")
		return f.Write(relPath, file)
	})
}

// Open opens the file at path
func (f *FilesystemMemory) Open(path string) (io.ReadCloser, error) {
	return f.fs.Open(path)
}

// ListFiles returns a list of all files in the filesystem
func (f *FilesystemMemory) ListFiles() ([]File, error) {
	var files []File

	var walk func(string) error
	walk = func(dirPath string) error {
		entries, err := f.fs.ReadDir(dirPath)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			entryPath := f.fs.Join(dirPath, entry.Name())
			if entry.IsDir() {
				if err := walk(entryPath); err != nil {
					return err
				}
				continue
			}

			relPath := entryPath
			if dirPath == "." || dirPath == "" {
				relPath = entry.Name()
			}
			files = append(files, File{
				Name:     filepath.ToSlash(relPath),
				Size:     entry.Size(),
				MimeType: helper.GetMimeType(entry.Name()),
			})
		}
		return nil
	}

	if err := walk("."); err != nil {
		return nil, err
	}

	return files, nil
}
