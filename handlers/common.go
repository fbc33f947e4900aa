package handlers

import (
	"net/http"
	"strconv"

	"github.com/haldialf/tugas-sabinaa/auth"

	"github.com/gin-gonic/gin"
)

// render attaches the queued transient notices to every page.
func render(c *gin.Context, code int, template string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Notices"] = auth.LoadSession(c).Notices()
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	c.HTML(code, template, data)
}

// notFound is used both for missing ids and for rows owned by someone else,
// so nothing leaks about other users' entities.
func notFound(c *gin.Context) {
	render(c, http.StatusNotFound, "not_found.tmpl", gin.H{})
}

func paramID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
