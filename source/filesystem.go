package source

import (
	"fmt"
	"io"

	"github.com/siherrmann/populationDashboard/config"
	"github.com/siherrmann/populationDashboard/dataset"
)

type File struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

// Filesystem is a read-only store the dataset file is loaded from
type Filesystem interface {
	Open(path string) (io.ReadCloser, error)
	ListFiles() ([]File, error)
}

// CreateFilesystem creates the filesystem selected by the storage configuration
func CreateFilesystem(cfg config.Storage) (Filesystem, error) {
	switch cfg.Mode {
	case config.STORAGE_MODE_EMBED, "":
		return NewFilesystemEmbed(dataset.Bundled, "data")
	case config.STORAGE_MODE_S3:
		if cfg.S3.BucketName == "" || cfg.S3.AccessKeyID == "" || cfg.S3.SecretAccessKey == "" {
			return nil, fmt.Errorf("missing required S3 configuration: S3_BUCKET_NAME, S3_ACCESS_KEY_ID, S3_SECRET_ACCESS_KEY")
		}
		return NewFilesystemS3(cfg.S3)
	case config.STORAGE_MODE_MEMORY:
		memory := NewFilesystemMemory()
		err := memory.Copy(dataset.Bundled, "data")
		if err != nil {
			return nil, fmt.Errorf("failed to seed memory filesystem: %w", err)
		}
		return memory, nil
	case config.STORAGE_MODE_LOCAL:
		return NewFilesystemLocal(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s (supported: embed, local, s3, memory)", cfg.Mode)
	}
}
