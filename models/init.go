package models

import (
	"github.com/haldialf/tugas-sabinaa/db"
)

func Init() {
	db.Instance.AutoMigrate(&User{})
	db.Instance.AutoMigrate(&Profile{})
	db.Instance.AutoMigrate(&UploadedFile{})
	db.Instance.AutoMigrate(&Album{})
	db.Instance.AutoMigrate(&AlbumFile{})
}
