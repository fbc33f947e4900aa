package models

import (
	"github.com/haldialf/tugas-sabinaa/db"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Username  string         `gorm:"type:varchar(150);index:uniq_username,unique"`
	Email     string         `gorm:"type:varchar(150)"`
	Password  string         `gorm:"type:varchar(128)"`
	Profile   Profile        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Files     []UploadedFile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Albums    []Album        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// UserCreate creates the user together with its profile in one transaction,
// so there is never a user row without a profile row.
func UserCreate(username, email, plainTextPassword string) (u User, err error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return
	}
	u.Username = username
	u.Email = email
	u.Password = string(hash)
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&u).Error; err != nil {
			return err
		}
		u.Profile = Profile{UserID: u.ID, Role: RoleViewer}
		return tx.Create(&u.Profile).Error
	})
	return
}

func UserLogin(username, plainTextPassword string) (u User, success bool) {
	if db.Instance.Preload("Profile").First(&u, "username = ?", username).Error != nil {
		return User{}, false
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plainTextPassword)) != nil {
		return User{}, false
	}
	u.Profile.TouchLastLogin()
	return u, true
}

func UserByID(id uint64) (u User, err error) {
	err = db.Instance.Preload("Profile").First(&u, "id = ?", id).Error
	return
}

func UsernameTaken(username string) bool {
	var count int64
	db.Instance.Model(&User{}).Where("username = ?", username).Count(&count)
	return count > 0
}
