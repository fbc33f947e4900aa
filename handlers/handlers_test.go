package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/haldialf/tugas-sabinaa/auth"
	"github.com/haldialf/tugas-sabinaa/config"
	"github.com/haldialf/tugas-sabinaa/db"
	"github.com/haldialf/tugas-sabinaa/models"
	"github.com/haldialf/tugas-sabinaa/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = filepath.Join(t.TempDir(), "test.db")
	db.Init()
	models.Init()
	storage.Use(storage.NewDiskStorage(t.TempDir()))

	router := gin.New()
	router.LoadHTMLGlob("../templates/*.tmpl")
	router.Use(sessions.Sessions("token", cookie.NewStore([]byte("test session key"))))

	router.GET("/", Home)
	router.GET("/signup/", SignupGet)
	router.POST("/signup/", SignupPost)
	router.GET("/login/", LoginGet)
	router.POST("/login/", LoginPost)
	router.GET("/logout/", Logout)
	router.GET("/upload_success/", UploadSuccess)

	authRouter := &auth.Router{Base: router}
	authRouter.GET("/profile/", Profile)
	authRouter.GET("/upload/", UploadGet)
	authRouter.POST("/upload/", UploadPost)
	authRouter.GET("/files/", FileList)
	authRouter.GET("/files/edit/:file_id/", FileEditGet)
	authRouter.POST("/files/edit/:file_id/", FileEditPost)
	authRouter.GET("/files/delete/:file_id/", FileDeleteGet)
	authRouter.POST("/files/delete/:file_id/", FileDeletePost)
	authRouter.GET("/create-album/", AlbumCreateGet)
	authRouter.POST("/create-album/", AlbumCreatePost)
	authRouter.GET("/albums/", AlbumList)
	authRouter.GET("/edit-album/:album_id/", AlbumEditGet)
	authRouter.POST("/edit-album/:album_id/", AlbumEditPost)
	authRouter.GET("/delete-album/:album_id/", AlbumDeleteGet)
	authRouter.POST("/delete-album/:album_id/", AlbumDeletePost)
	authRouter.GET("/album/:album_id/", AlbumDetail)
	authRouter.GET("/media/:file_id", MediaFetch)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, cookies []*http.Cookie, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postForm(t *testing.T, router *gin.Engine, path string, cookies []*http.Cookie, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return doRequest(t, router, http.MethodPost, path, cookies, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

// signupUser registers a fresh user and returns it with the session cookies.
func signupUser(t *testing.T, router *gin.Engine) (models.User, []*http.Cookie) {
	t.Helper()
	username := "user-" + uuid.NewString()
	w := postForm(t, router, "/signup/", nil, url.Values{
		"username":  {username},
		"email":     {username + "@example.com"},
		"password1": {"long enough pass"},
		"password2": {"long enough pass"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())

	var user models.User
	require.NoError(t, db.Instance.Preload("Profile").First(&user, "username = ?", username).Error)
	return user, w.Result().Cookies()
}

type filePart struct {
	name    string
	content string
}

func multipartBody(t *testing.T, labels string, files []filePart) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("labels", labels))
	for _, f := range files {
		part, err := writer.CreateFormFile("file", f.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}
