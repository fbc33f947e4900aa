package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/haldialf/tugas-sabinaa/models"
	"github.com/haldialf/tugas-sabinaa/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlbumCreateRejectsBadDisplayPattern(t *testing.T) {
	router := setupTest(t)
	user, cookies := signupUser(t, router)

	w := postForm(t, router, "/create-album/", cookies, url.Values{
		"album_name":      {"Holiday"},
		"display_pattern": {"mosaic"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "is not one of the available choices")

	albums, err := models.AlbumsOfUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, albums)
}

func TestAlbumCreateWithSelection(t *testing.T) {
	router := setupTest(t)
	user, cookies := signupUser(t, router)
	other, otherCookies := signupUser(t, router)

	mine := mustUpload(t, router, cookies, user, "mine.txt", "mine")
	theirs := mustUpload(t, router, otherCookies, other, "theirs.txt", "theirs")

	w := postForm(t, router, "/create-album/", cookies, url.Values{
		"album_name":      {"Holiday"},
		"display_pattern": {"grid"},
		"media_files": {
			strconv.FormatUint(mine.ID, 10),
			strconv.FormatUint(theirs.ID, 10), // foreign: silently dropped
			"garbage",
		},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/albums/", w.Header().Get("Location"))

	albums, err := models.AlbumsOfUser(user.ID)
	require.NoError(t, err)
	require.Len(t, albums, 1)
	ids, err := models.AlbumFileIDs(albums[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{mine.ID}, ids)
}

func TestAlbumDetailForeignIDIsNotFound(t *testing.T) {
	router := setupTest(t)
	user, cookies := signupUser(t, router)
	_, otherCookies := signupUser(t, router)

	album, err := models.AlbumCreate(user.ID, "Private", models.DisplayPatternGrid, nil)
	require.NoError(t, err)

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/album/%d/", album.ID), otherCookies, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "Private")

	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/album/%d/", album.ID), cookies, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAlbumDetailTextContent(t *testing.T) {
	router := setupTest(t)
	user, cookies := signupUser(t, router)
	file := mustUpload(t, router, cookies, user, "notes.txt", "the quick brown fox")
	album, err := models.AlbumCreate(user.ID, "Texts", models.DisplayPatternSlideshow, []uint64{file.ID})
	require.NoError(t, err)

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/album/%d/", album.ID), cookies, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "the quick brown fox")
}

func TestAlbumDetailMissingBytesYieldsNilContent(t *testing.T) {
	router := setupTest(t)
	user, cookies := signupUser(t, router)
	file := mustUpload(t, router, cookies, user, "gone.txt", "soon to vanish")
	album, err := models.AlbumCreate(user.ID, "Texts", models.DisplayPatternGrid, []uint64{file.ID})
	require.NoError(t, err)

	require.NoError(t, storage.Get().Delete(file.FileLocation))

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/album/%d/", album.ID), cookies, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "File content unavailable.")
	assert.NotContains(t, w.Body.String(), "soon to vanish")
}

func TestAlbumEditReplacesMembership(t *testing.T) {
	router := setupTest(t)
	user, cookies := signupUser(t, router)
	a := mustUpload(t, router, cookies, user, "a.txt", "a")
	b := mustUpload(t, router, cookies, user, "b.txt", "b")
	c := mustUpload(t, router, cookies, user, "c.txt", "c")
	album, err := models.AlbumCreate(user.ID, "Holiday", models.DisplayPatternGrid, []uint64{a.ID, b.ID})
	require.NoError(t, err)

	w := postForm(t, router, fmt.Sprintf("/edit-album/%d/", album.ID), cookies, url.Values{
		"album_name":      {"Holiday"},
		"display_pattern": {"carousel"},
		"media_files": {
			strconv.FormatUint(b.ID, 10),
			strconv.FormatUint(c.ID, 10),
		},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	ids, err := models.AlbumFileIDs(album.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{b.ID, c.ID}, ids)
}

func TestAlbumDeleteConfirmThenExecute(t *testing.T) {
	router := setupTest(t)
	user, cookies := signupUser(t, router)
	file := mustUpload(t, router, cookies, user, "keep.txt", "kept")
	album, err := models.AlbumCreate(user.ID, "Doomed", models.DisplayPatternGrid, []uint64{file.ID})
	require.NoError(t, err)

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/delete-album/%d/", album.ID), cookies, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	_, err = models.AlbumOfUser(album.ID, user.ID)
	require.NoError(t, err)

	w = postForm(t, router, fmt.Sprintf("/delete-album/%d/", album.ID), cookies, url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)
	_, err = models.AlbumOfUser(album.ID, user.ID)
	assert.Error(t, err)
	// Member files survive the album
	_, err = models.FileOfUser(file.ID, user.ID)
	assert.NoError(t, err)
}
