package handlers

import (
	"bytes"
	"net/http"

	"github.com/haldialf/tugas-sabinaa/auth"
	"github.com/haldialf/tugas-sabinaa/forms"
	"github.com/haldialf/tugas-sabinaa/models"
	"github.com/haldialf/tugas-sabinaa/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	log "github.com/sirupsen/logrus"
)

// MemberFile is the album-detail view model for one member file.
type MemberFile struct {
	File    models.UploadedFile
	IsImage bool
	IsText  bool
	// Content holds the text for text members; nil when the bytes are
	// missing from storage.
	Content *string
}

func AlbumCreateGet(c *gin.Context, user *models.User) {
	files, _ := models.FilesOfUser(user.ID)
	render(c, http.StatusOK, "create_album.tmpl", gin.H{
		"Form":     forms.AlbumForm{},
		"Files":    files,
		"Patterns": models.DisplayPatterns,
	})
}

func AlbumCreatePost(c *gin.Context, user *models.User) {
	albumForm, selection, errors, ok := bindAlbumForms(c)
	if !ok || len(errors) > 0 {
		files, _ := models.FilesOfUser(user.ID)
		render(c, http.StatusOK, "create_album.tmpl", gin.H{
			"Form":     albumForm,
			"Files":    files,
			"Patterns": models.DisplayPatterns,
			"Errors":   errors,
		})
		return
	}
	session := auth.LoadSession(c)
	_, err := models.AlbumCreate(user.ID, albumForm.AlbumName, albumForm.DisplayPattern, selection.FileIDs(user.ID))
	if err != nil {
		log.WithError(err).Error("album create failed")
		session.AddNotice("Error creating the album.")
		c.Redirect(http.StatusSeeOther, "/create-album/")
		return
	}
	session.AddNotice("Album uploaded successfully!")
	c.Redirect(http.StatusSeeOther, "/albums/")
}

func AlbumList(c *gin.Context, user *models.User) {
	albums, err := models.AlbumsOfUser(user.ID)
	if err != nil {
		log.WithError(err).Error("album list failed")
		render(c, http.StatusInternalServerError, "album_list.tmpl", gin.H{"Error": "Could not load your albums."})
		return
	}
	render(c, http.StatusOK, "album_list.tmpl", gin.H{"Albums": albums})
}

func AlbumDetail(c *gin.Context, user *models.User) {
	album, ok := loadOwnAlbum(c, user)
	if !ok {
		return
	}
	rows, err := models.AlbumFilesWithFiles(album.ID)
	if err != nil {
		log.WithError(err).Error("album membership load failed")
		render(c, http.StatusInternalServerError, "album_detail.tmpl", gin.H{"Album": album, "Error": "Could not load the album contents."})
		return
	}
	members := make([]MemberFile, 0, len(rows))
	for _, row := range rows {
		member := MemberFile{
			File:    row.File,
			IsImage: row.File.IsImage(),
			IsText:  row.File.IsText(),
		}
		if member.IsText {
			member.Content = loadTextContent(row.File.FileLocation)
		}
		members = append(members, member)
	}
	render(c, http.StatusOK, "album_detail.tmpl", gin.H{"Album": album, "MediaFiles": members})
}

func AlbumEditGet(c *gin.Context, user *models.User) {
	album, ok := loadOwnAlbum(c, user)
	if !ok {
		return
	}
	files, _ := models.FilesOfUser(user.ID)
	currentIDs, _ := models.AlbumFileIDs(album.ID)
	render(c, http.StatusOK, "edit_album.tmpl", gin.H{
		"Album":    album,
		"Form":     forms.AlbumForm{AlbumName: album.AlbumName, DisplayPattern: album.DisplayPattern},
		"Files":    files,
		"Selected": idSet(currentIDs),
		"Patterns": models.DisplayPatterns,
	})
}

func AlbumEditPost(c *gin.Context, user *models.User) {
	album, ok := loadOwnAlbum(c, user)
	if !ok {
		return
	}
	albumForm, selection, errors, bound := bindAlbumForms(c)
	if !bound || len(errors) > 0 {
		files, _ := models.FilesOfUser(user.ID)
		currentIDs, _ := models.AlbumFileIDs(album.ID)
		render(c, http.StatusOK, "edit_album.tmpl", gin.H{
			"Album":    album,
			"Form":     albumForm,
			"Files":    files,
			"Selected": idSet(currentIDs),
			"Patterns": models.DisplayPatterns,
			"Errors":   errors,
		})
		return
	}
	session := auth.LoadSession(c)
	if err := album.Update(albumForm.AlbumName, albumForm.DisplayPattern, selection.FileIDs(user.ID)); err != nil {
		log.WithError(err).Error("album update failed")
		session.AddNotice("Error updating the album.")
		c.Redirect(http.StatusSeeOther, "/albums/")
		return
	}
	session.AddNotice("Album updated successfully!")
	c.Redirect(http.StatusSeeOther, "/albums/")
}

func AlbumDeleteGet(c *gin.Context, user *models.User) {
	album, ok := loadOwnAlbum(c, user)
	if !ok {
		return
	}
	render(c, http.StatusOK, "confirm_delete_album.tmpl", gin.H{"Album": album})
}

func AlbumDeletePost(c *gin.Context, user *models.User) {
	album, ok := loadOwnAlbum(c, user)
	if !ok {
		return
	}
	session := auth.LoadSession(c)
	if err := album.Delete(); err != nil {
		log.WithError(err).Error("album delete failed")
		session.AddNotice("Error deleting the album.")
		c.Redirect(http.StatusSeeOther, "/albums/")
		return
	}
	session.AddNotice("Album deleted successfully.")
	c.Redirect(http.StatusSeeOther, "/albums/")
}

// bindAlbumForms binds and validates the two album forms. Both must pass
// before anything is persisted.
func bindAlbumForms(c *gin.Context) (forms.AlbumForm, forms.MediaSelectionForm, map[string]string, bool) {
	albumForm := forms.AlbumForm{}
	selection := forms.MediaSelectionForm{}
	if err := c.ShouldBindWith(&albumForm, binding.Form); err != nil {
		return albumForm, selection, map[string]string{"form": err.Error()}, false
	}
	if err := c.ShouldBindWith(&selection, binding.Form); err != nil {
		return albumForm, selection, map[string]string{"media_files": err.Error()}, false
	}
	return albumForm, selection, albumForm.Validate(), true
}

func loadOwnAlbum(c *gin.Context, user *models.User) (models.Album, bool) {
	id, ok := paramID(c, "album_id")
	if !ok {
		notFound(c)
		return models.Album{}, false
	}
	album, err := models.AlbumOfUser(id, user.ID)
	if err != nil {
		notFound(c)
		return models.Album{}, false
	}
	return album, true
}

// loadTextContent reads a text member's bytes; nil when missing on disk.
func loadTextContent(path string) *string {
	var buf bytes.Buffer
	if _, err := storage.Get().Load(path, &buf); err != nil {
		return nil
	}
	content := buf.String()
	return &content
}

func idSet(ids []uint64) map[uint64]bool {
	set := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
