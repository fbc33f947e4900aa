package models

import (
	"github.com/haldialf/tugas-sabinaa/db"

	"gorm.io/gorm"
)

const (
	DisplayPatternCarousel  = "carousel"
	DisplayPatternGrid      = "grid"
	DisplayPatternSlideshow = "slideshow"
)

var DisplayPatterns = []string{DisplayPatternCarousel, DisplayPatternGrid, DisplayPatternSlideshow}

func ValidDisplayPattern(pattern string) bool {
	for _, p := range DisplayPatterns {
		if p == pattern {
			return true
		}
	}
	return false
}

type Album struct {
	ID             uint64 `gorm:"primaryKey"`
	UserID         uint64 `gorm:"not null;index:user_album_created,priority:1"`
	User           User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      int64  `gorm:"index:user_album_created,priority:2"`
	AlbumName      string `gorm:"type:varchar(255)"`
	DisplayPattern string `gorm:"type:varchar(20)"`
}

func AlbumOfUser(albumID, userID uint64) (a Album, err error) {
	err = db.Instance.First(&a, "id = ? and user_id = ?", albumID, userID).Error
	return
}

func AlbumsOfUser(userID uint64) (albums []Album, err error) {
	err = db.Instance.Where("user_id = ?", userID).Order("created_at DESC").Find(&albums).Error
	return
}

// AlbumCreate persists the album and its initial membership in one
// transaction. The caller is responsible for having owner-filtered fileIDs.
func AlbumCreate(userID uint64, name, pattern string, fileIDs []uint64) (a Album, err error) {
	a.UserID = userID
	a.AlbumName = name
	a.DisplayPattern = pattern
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		return insertAlbumFiles(tx, a.ID, fileIDs)
	})
	return
}

// Update saves the album metadata and replaces the membership wholesale:
// all existing join rows are deleted and the new set inserted.
func (a *Album) Update(name, pattern string, fileIDs []uint64) error {
	a.AlbumName = name
	a.DisplayPattern = pattern
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(a).Error; err != nil {
			return err
		}
		if err := tx.Delete(&AlbumFile{}, "album_id = ?", a.ID).Error; err != nil {
			return err
		}
		return insertAlbumFiles(tx, a.ID, fileIDs)
	})
}

// Delete removes the album and its membership rows. Member files stay.
func (a *Album) Delete() error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&AlbumFile{}, "album_id = ?", a.ID).Error; err != nil {
			return err
		}
		return tx.Delete(a).Error
	})
}
