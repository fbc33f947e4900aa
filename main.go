package main

import (
	"strings"
	"time"

	"github.com/haldialf/tugas-sabinaa/auth"
	"github.com/haldialf/tugas-sabinaa/config"
	"github.com/haldialf/tugas-sabinaa/db"
	"github.com/haldialf/tugas-sabinaa/handlers"
	"github.com/haldialf/tugas-sabinaa/models"
	"github.com/haldialf/tugas-sabinaa/storage"
	"github.com/haldialf/tugas-sabinaa/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 14 * 86400 // 2 weeks
)

func main() {
	db.Init()
	models.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	// HTML templates
	router.LoadHTMLGlob("templates/*.tmpl")

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/media"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, individual end-points can override that

	// Public pages
	router.GET("/", handlers.Home)
	router.GET("/signup/", handlers.SignupGet)
	router.POST("/signup/", handlers.SignupPost)
	router.GET("/login/", handlers.LoginGet)
	router.POST("/login/", handlers.LoginPost)
	router.GET("/logout/", handlers.Logout)
	router.POST("/logout/", handlers.Logout)
	router.GET("/upload_success/", handlers.UploadSuccess)

	// Everything below requires a logged-in session
	authRouter := &auth.Router{Base: router}
	authRouter.GET("/profile/", handlers.Profile)
	// File handlers
	authRouter.GET("/upload/", handlers.UploadGet)
	authRouter.POST("/upload/", handlers.UploadPost)
	authRouter.GET("/files/", handlers.FileList)
	authRouter.GET("/files/edit/:file_id/", handlers.FileEditGet)
	authRouter.POST("/files/edit/:file_id/", handlers.FileEditPost)
	authRouter.GET("/files/delete/:file_id/", handlers.FileDeleteGet)
	authRouter.POST("/files/delete/:file_id/", handlers.FileDeletePost)
	// Album handlers
	authRouter.GET("/create-album/", handlers.AlbumCreateGet)
	authRouter.POST("/create-album/", handlers.AlbumCreatePost)
	authRouter.GET("/albums/", handlers.AlbumList)
	authRouter.GET("/edit-album/:album_id/", handlers.AlbumEditGet)
	authRouter.POST("/edit-album/:album_id/", handlers.AlbumEditPost)
	authRouter.GET("/delete-album/:album_id/", handlers.AlbumDeleteGet)
	authRouter.POST("/delete-album/:album_id/", handlers.AlbumDeletePost)
	authRouter.GET("/album/:album_id/", handlers.AlbumDetail)
	// Stored bytes for the caller's own files
	authRouter.GET("/media/:file_id", handlers.MediaFetch)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
