package models

import (
	"github.com/haldialf/tugas-sabinaa/db"

	"gorm.io/gorm"
)

type AlbumFile struct {
	CreatedAt int64
	AlbumID   uint64       `gorm:"primaryKey"`
	Album     Album        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	FileID    uint64       `gorm:"primaryKey"`
	File      UploadedFile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// AlbumFilesWithFiles returns the album's membership rows with the referenced
// file attributes eagerly loaded.
func AlbumFilesWithFiles(albumID uint64) (rows []AlbumFile, err error) {
	err = db.Instance.Preload("File").Where("album_id = ?", albumID).Order("created_at ASC").Find(&rows).Error
	return
}

// AlbumFileIDs returns just the member file ids, used to pre-tick the
// selection on the edit form.
func AlbumFileIDs(albumID uint64) (ids []uint64, err error) {
	err = db.Instance.Model(&AlbumFile{}).Where("album_id = ?", albumID).Pluck("file_id", &ids).Error
	return
}

func insertAlbumFiles(tx *gorm.DB, albumID uint64, fileIDs []uint64) error {
	for _, id := range fileIDs {
		if err := tx.Create(&AlbumFile{AlbumID: albumID, FileID: id}).Error; err != nil {
			return err
		}
	}
	return nil
}
