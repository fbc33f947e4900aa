package storage

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/haldialf/tugas-sabinaa/config"
)

// StorageAPI abstracts where uploaded bytes live (local disk or S3).
//
// Note on consistency: bytes are written outside any database transaction.
// A metadata write that fails after a successful Save leaves the bytes
// behind, and nothing cleans them up later. This mirrors the behaviour of
// the original application and is a known, accepted leak.
type StorageAPI interface {
	GetFullPath(path string) string
	EnsureDirExists(dir string) error
	GetSize(path string) int64
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
}

var instance StorageAPI

func Init() {
	if config.S3_BUCKET != "" {
		instance = NewS3Storage(config.S3_BUCKET, config.S3_REGION, config.S3_ENDPOINT, config.S3_AUTH)
	} else {
		instance = NewDiskStorage(config.MEDIA_DIR)
	}
}

func Get() StorageAPI {
	if instance == nil {
		panic("no storage available")
	}
	return instance
}

// Use replaces the active storage, for tests.
func Use(s StorageAPI) {
	instance = s
}

// UserFilePath returns the storage path for a user's file. Only the base of
// the client-supplied name is used so it cannot escape the user's directory.
// Two uploads with the same name from the same user overwrite each other.
func UserFilePath(userID uint64, name string) string {
	return fmt.Sprintf("uploads/%d/%s", userID, filepath.Base(name))
}

// UserThumbPath is where the generated thumbnail for an image lives.
func UserThumbPath(userID uint64, name string) string {
	return fmt.Sprintf("uploads/%d/.thumb/%s.jpg", userID, filepath.Base(name))
}
