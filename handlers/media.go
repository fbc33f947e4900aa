package handlers

import (
	"github.com/haldialf/tugas-sabinaa/models"
	"github.com/haldialf/tugas-sabinaa/storage"

	"github.com/gin-gonic/gin"
)

// MediaFetch serves the stored bytes of the caller's own file, so templates
// can embed images and link downloads. ?thumb=1 returns the thumbnail for
// images, falling back to the original when none was generated.
func MediaFetch(c *gin.Context, user *models.User) {
	file, ok := loadOwnFile(c, user)
	if !ok {
		return
	}
	store := storage.Get()
	if c.Query("thumb") == "1" && file.IsImage() {
		thumbPath := storage.UserThumbPath(user.ID, file.FileName)
		if store.GetSize(thumbPath) > 0 {
			store.Serve(thumbPath, c.Request, c.Writer)
			return
		}
	}
	store.Serve(file.FileLocation, c.Request, c.Writer)
}
