package handlers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/haldialf/tugas-sabinaa/auth"
	"github.com/haldialf/tugas-sabinaa/db"
	"github.com/haldialf/tugas-sabinaa/forms"
	"github.com/haldialf/tugas-sabinaa/models"
	"github.com/haldialf/tugas-sabinaa/storage"
	"github.com/haldialf/tugas-sabinaa/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	log "github.com/sirupsen/logrus"
)

const thumbMaxSize = 1280

func UploadGet(c *gin.Context, user *models.User) {
	render(c, http.StatusOK, "upload.tmpl", gin.H{"Form": forms.UploadForm{}})
}

// UploadPost accepts zero or more files in one multipart submission. Each
// file is processed independently: a storage or DB failure for one file is
// reported and the rest of the batch continues.
func UploadPost(c *gin.Context, user *models.User) {
	form := forms.UploadForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		render(c, http.StatusBadRequest, "upload.tmpl", gin.H{"Form": form, "Errors": gin.H{"form": err.Error()}})
		return
	}
	if errors := form.Validate(); len(errors) > 0 {
		render(c, http.StatusOK, "upload.tmpl", gin.H{"Form": form, "Errors": errors})
		return
	}
	multipartForm, err := c.MultipartForm()
	if err != nil {
		render(c, http.StatusBadRequest, "upload.tmpl", gin.H{"Form": form, "Errors": gin.H{"file": err.Error()}})
		return
	}
	files := multipartForm.File["file"]
	if len(files) == 0 {
		render(c, http.StatusOK, "upload.tmpl", gin.H{"Form": form, "Errors": gin.H{"file": "No files selected for upload."}})
		return
	}
	session := auth.LoadSession(c)
	for _, file := range files {
		if _, err := SaveUploadedFile(user, file, form.Labels); err != nil {
			log.WithError(err).WithField("file", file.Filename).Error("upload failed")
			session.AddNotice(fmt.Sprintf("Error saving file %s.", file.Filename))
		}
	}
	c.Redirect(http.StatusSeeOther, "/upload_success/")
}

func UploadSuccess(c *gin.Context) {
	render(c, http.StatusOK, "upload_success.tmpl", gin.H{})
}

// SaveUploadedFile writes the payload through the storage adapter and then
// persists the metadata row. A failed metadata write leaves the bytes behind
// on purpose (see storage.StorageAPI).
func SaveUploadedFile(user *models.User, file *multipart.FileHeader, labels string) (*models.UploadedFile, error) {
	reader, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", file.Filename, err)
	}
	defer reader.Close()

	path := storage.UserFilePath(user.ID, file.Filename)
	store := storage.Get()
	size, err := store.Save(path, reader)
	if err != nil {
		return nil, fmt.Errorf("storing %s: %w", file.Filename, err)
	}
	record := models.UploadedFile{
		UserID:       user.ID,
		CreatedAt:    time.Now().Unix(),
		FileType:     mimeSubType(file.Header.Get("Content-Type")),
		FileName:     file.Filename,
		FileSize:     size,
		FileLocation: path,
		Labels:       labels,
	}
	if err := db.Instance.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("saving metadata for %s: %w", file.Filename, err)
	}
	if record.IsImage() {
		createThumbnail(store, user.ID, &record)
	}
	return &record, nil
}

// createThumbnail is best-effort: pages fall back to the original image.
func createThumbnail(store storage.StorageAPI, userID uint64, record *models.UploadedFile) {
	var original, thumb bytes.Buffer
	if _, err := store.Load(record.FileLocation, &original); err != nil {
		log.WithError(err).WithField("file", record.FileName).Warn("thumbnail: cannot read original")
		return
	}
	if _, err := utils.CreateThumb(thumbMaxSize, &original, &thumb); err != nil {
		log.WithError(err).WithField("file", record.FileName).Warn("thumbnail: conversion failed")
		return
	}
	if _, err := store.Save(storage.UserThumbPath(userID, record.FileName), &thumb); err != nil {
		log.WithError(err).WithField("file", record.FileName).Warn("thumbnail: write failed")
	}
}

// mimeSubType derives the stored file type from the MIME type, e.g.
// "image/jpeg" -> "jpeg".
func mimeSubType(contentType string) string {
	if _, sub, found := strings.Cut(contentType, "/"); found {
		if i := strings.IndexByte(sub, ';'); i >= 0 {
			sub = sub[:i]
		}
		return strings.TrimSpace(sub)
	}
	return contentType
}
