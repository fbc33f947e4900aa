package handlers

import (
	"net/http"
	"time"

	"github.com/haldialf/tugas-sabinaa/auth"
	"github.com/haldialf/tugas-sabinaa/forms"
	"github.com/haldialf/tugas-sabinaa/models"
	"github.com/haldialf/tugas-sabinaa/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	log "github.com/sirupsen/logrus"
)

func FileList(c *gin.Context, user *models.User) {
	files, err := models.FilesOfUser(user.ID)
	if err != nil {
		log.WithError(err).Error("file list failed")
		render(c, http.StatusInternalServerError, "file_list.tmpl", gin.H{"Error": "Could not load your files."})
		return
	}
	render(c, http.StatusOK, "file_list.tmpl", gin.H{"Files": files})
}

func FileEditGet(c *gin.Context, user *models.User) {
	file, ok := loadOwnFile(c, user)
	if !ok {
		return
	}
	render(c, http.StatusOK, "edit_file.tmpl", gin.H{"File": file, "Form": forms.UploadForm{Labels: file.Labels}})
}

// FileEditPost updates the labels and, when a replacement payload is
// attached, re-runs the store step and overwrites name/size/type/location.
func FileEditPost(c *gin.Context, user *models.User) {
	file, ok := loadOwnFile(c, user)
	if !ok {
		return
	}
	form := forms.UploadForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		render(c, http.StatusBadRequest, "edit_file.tmpl", gin.H{"File": file, "Form": form, "Errors": gin.H{"form": err.Error()}})
		return
	}
	if errors := form.Validate(); len(errors) > 0 {
		render(c, http.StatusOK, "edit_file.tmpl", gin.H{"File": file, "Form": form, "Errors": errors})
		return
	}
	session := auth.LoadSession(c)
	if replacement, err := c.FormFile("file"); err == nil && replacement != nil {
		reader, err := replacement.Open()
		if err != nil {
			session.AddNotice("Error saving file " + replacement.Filename + ".")
			c.Redirect(http.StatusSeeOther, "/files/")
			return
		}
		defer reader.Close()
		path := storage.UserFilePath(user.ID, replacement.Filename)
		size, err := storage.Get().Save(path, reader)
		if err != nil {
			log.WithError(err).WithField("file", replacement.Filename).Error("replacement store failed")
			session.AddNotice("Error saving file " + replacement.Filename + ".")
			c.Redirect(http.StatusSeeOther, "/files/")
			return
		}
		file.FileName = replacement.Filename
		file.FileSize = size
		file.FileType = mimeSubType(replacement.Header.Get("Content-Type"))
		file.FileLocation = path
		if file.IsImage() {
			createThumbnail(storage.Get(), user.ID, &file)
		}
	}
	file.Labels = form.Labels
	file.UpdatedAt = time.Now().Unix()
	if err := file.Save(); err != nil {
		log.WithError(err).Error("file update failed")
		session.AddNotice("Error saving metadata for file " + file.FileName + ".")
		c.Redirect(http.StatusSeeOther, "/files/")
		return
	}
	session.AddNotice("File details updated successfully.")
	c.Redirect(http.StatusSeeOther, "/files/")
}

func FileDeleteGet(c *gin.Context, user *models.User) {
	file, ok := loadOwnFile(c, user)
	if !ok {
		return
	}
	render(c, http.StatusOK, "confirm_delete.tmpl", gin.H{"File": file})
}

func FileDeletePost(c *gin.Context, user *models.User) {
	file, ok := loadOwnFile(c, user)
	if !ok {
		return
	}
	session := auth.LoadSession(c)
	if err := file.Delete(); err != nil {
		log.WithError(err).Error("file delete failed")
		session.AddNotice("Error deleting file " + file.FileName + ".")
		c.Redirect(http.StatusSeeOther, "/files/")
		return
	}
	// Bytes are removed best-effort; a leftover file is logged and tolerated.
	store := storage.Get()
	if err := store.Delete(file.FileLocation); err != nil {
		log.WithError(err).WithField("path", file.FileLocation).Warn("could not delete stored bytes")
	}
	if file.IsImage() {
		_ = store.Delete(storage.UserThumbPath(user.ID, file.FileName))
	}
	session.AddNotice("File deleted successfully.")
	c.Redirect(http.StatusSeeOther, "/files/")
}

func loadOwnFile(c *gin.Context, user *models.User) (models.UploadedFile, bool) {
	id, ok := paramID(c, "file_id")
	if !ok {
		notFound(c)
		return models.UploadedFile{}, false
	}
	file, err := models.FileOfUser(id, user.ID)
	if err != nil {
		notFound(c)
		return models.UploadedFile{}, false
	}
	return file, true
}
