package models

import (
	"path/filepath"
	"testing"

	"github.com/haldialf/tugas-sabinaa/config"
	"github.com/haldialf/tugas-sabinaa/db"

	"github.com/google/uuid"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = filepath.Join(t.TempDir(), "test.db")
	db.Init()
	Init()
}

func createTestUser(t *testing.T) User {
	t.Helper()
	name := "user-" + uuid.NewString()
	u, err := UserCreate(name, name+"@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("can't create user: %s", err)
	}
	return u
}

func createTestFile(t *testing.T, userID uint64, name string) UploadedFile {
	t.Helper()
	f := UploadedFile{
		UserID:       userID,
		FileType:     "plain",
		FileName:     name,
		FileSize:     42,
		FileLocation: "uploads/1/" + name,
	}
	if err := db.Instance.Create(&f).Error; err != nil {
		t.Fatalf("can't create file: %s", err)
	}
	return f
}
