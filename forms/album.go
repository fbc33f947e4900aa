package forms

import (
	"strconv"
	"strings"

	"github.com/haldialf/tugas-sabinaa/models"
)

type AlbumForm struct {
	AlbumName      string `form:"album_name"`
	DisplayPattern string `form:"display_pattern"`
}

func (f *AlbumForm) Validate() map[string]string {
	errors := map[string]string{}
	f.AlbumName = strings.TrimSpace(f.AlbumName)
	if f.AlbumName == "" {
		errors["album_name"] = "This field is required."
	}
	if !models.ValidDisplayPattern(f.DisplayPattern) {
		errors["display_pattern"] = "Select a valid choice. " + f.DisplayPattern + " is not one of the available choices."
	}
	return errors
}

// MediaSelectionForm carries the set of file ids picked for an album.
type MediaSelectionForm struct {
	MediaFiles []string `form:"media_files"`
}

// FileIDs parses and owner-filters the selection. Malformed and foreign ids
// are excluded rather than flagged: a well-behaved client never submits them.
func (f *MediaSelectionForm) FileIDs(userID uint64) []uint64 {
	requested := make([]uint64, 0, len(f.MediaFiles))
	for _, s := range f.MediaFiles {
		if id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64); err == nil {
			requested = append(requested, id)
		}
	}
	files, err := models.FilesOfUserByIDs(userID, requested)
	if err != nil {
		return nil
	}
	ids := make([]uint64, 0, len(files))
	for _, file := range files {
		ids = append(ids, file.ID)
	}
	return ids
}
