package models

import (
	"strings"

	"github.com/haldialf/tugas-sabinaa/db"

	"gorm.io/gorm"
)

type UploadedFile struct {
	ID           uint64 `gorm:"primaryKey"`
	UserID       uint64 `gorm:"not null;index"`
	User         User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    int64
	UpdatedAt    int64
	FileType     string `gorm:"type:varchar(20)"` // MIME subtype, e.g. "jpeg"
	FileName     string `gorm:"type:varchar(255)"`
	FileSize     int64
	FileLocation string `gorm:"type:varchar(500)"` // Storage path of the bytes
	Labels       string `gorm:"type:varchar(255)"`
}

func (f *UploadedFile) hasSuffix(suffixes ...string) bool {
	name := strings.ToLower(f.FileName)
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

func (f *UploadedFile) IsImage() bool {
	return f.hasSuffix(".png", ".jpg", ".jpeg", ".gif", ".jfif")
}

func (f *UploadedFile) IsText() bool {
	return f.hasSuffix(".txt", ".csv", ".md", ".log")
}

func (f *UploadedFile) IsAudio() bool {
	return f.hasSuffix(".mp3")
}

func (f *UploadedFile) IsVideo() bool {
	return f.hasSuffix(".mp4")
}

// FileOfUser loads a file scoped to its owner. Anything else is a not-found,
// including existing files of other users.
func FileOfUser(fileID, userID uint64) (f UploadedFile, err error) {
	err = db.Instance.First(&f, "id = ? and user_id = ?", fileID, userID).Error
	return
}

func FilesOfUser(userID uint64) (files []UploadedFile, err error) {
	err = db.Instance.Where("user_id = ?", userID).Order("created_at DESC").Find(&files).Error
	return
}

// FilesOfUserByIDs returns only those of the given ids that belong to the
// user. Foreign or unknown ids are dropped, not an error.
func FilesOfUserByIDs(userID uint64, ids []uint64) (files []UploadedFile, err error) {
	if len(ids) == 0 {
		return
	}
	err = db.Instance.Where("user_id = ? and id in ?", userID, ids).Find(&files).Error
	return
}

func (f *UploadedFile) Save() error {
	return db.Instance.Save(f).Error
}

// Delete removes the file row and its album membership rows. The physical
// bytes are the caller's concern (see handlers.FileDelete).
func (f *UploadedFile) Delete() error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&AlbumFile{}, "file_id = ?", f.ID).Error; err != nil {
			return err
		}
		return tx.Delete(f).Error
	})
}
