package source

import (
	"io"
	"io/fs"

	"github.com/siherrmann/populationDashboard/helper"
)

// FilesystemEmbed implements the Filesystem interface on top of an fs.FS, usually the bundled dataset
type FilesystemEmbed struct {
	fsys fs.FS
}

// NewFilesystemEmbed serves the files below root of fsys
func NewFilesystemEmbed(fsys fs.FS, root string) (Filesystem, error) {
	sub, err := fs.Sub(fsys, root)
	if err != nil {
		return nil, err
	}
	return &FilesystemEmbed{fsys: sub}, nil
}

// Open opens the file at path
func (f *FilesystemEmbed) Open(path string) (io.ReadCloser, error) {
	return f.fsys.Open(path)
}

// ListFiles returns all regular files
func (f *FilesystemEmbed) ListFiles() ([]File, error) {
	var files []File

	err := fs.WalkDir(f.fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}
		files = append(files, File{
			Name:     path,
			Size:     info.Size(),
			MimeType: helper.GetMimeType(path),
		})
		return nil
	})

	return files, err
}
