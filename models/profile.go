package models

import (
	"time"

	"github.com/haldialf/tugas-sabinaa/db"
)

const (
	RoleViewer   = "viewer"
	RoleUploader = "uploader"
	RoleAdmin    = "admin"
)

// Profile is always created together with its User (see UserCreate).
type Profile struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index:uniq_profile_user,unique"`
	CreatedAt int64
	Role      string `gorm:"type:varchar(50);default:viewer"`
	LastLogin int64
}

func (p *Profile) TouchLastLogin() {
	p.LastLogin = time.Now().Unix()
	db.Instance.Model(p).Update("last_login", p.LastLogin)
}
