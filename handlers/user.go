package handlers

import (
	"net/http"

	"github.com/haldialf/tugas-sabinaa/auth"
	"github.com/haldialf/tugas-sabinaa/forms"
	"github.com/haldialf/tugas-sabinaa/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	log "github.com/sirupsen/logrus"
)

type UserLoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func Home(c *gin.Context) {
	user := auth.LoadSession(c).User()
	render(c, http.StatusOK, "home.tmpl", gin.H{"User": user})
}

func SignupGet(c *gin.Context) {
	render(c, http.StatusOK, "signup.tmpl", gin.H{"Form": forms.SignupForm{}})
}

func SignupPost(c *gin.Context) {
	form := forms.SignupForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		render(c, http.StatusBadRequest, "signup.tmpl", gin.H{"Form": form, "Errors": gin.H{"form": err.Error()}})
		return
	}
	if errors := form.Validate(); len(errors) > 0 {
		render(c, http.StatusOK, "signup.tmpl", gin.H{"Form": form, "Errors": errors})
		return
	}
	user, err := models.UserCreate(form.Username, form.Email, form.Password1)
	if err != nil {
		log.WithError(err).Error("user create failed")
		render(c, http.StatusOK, "signup.tmpl", gin.H{"Form": form, "Errors": gin.H{"username": "Could not create the account."}})
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(user.ID)
	session.AddNotice("Welcome " + user.Username + ", your account has been created.")
	c.Redirect(http.StatusSeeOther, "/")
}

func LoginGet(c *gin.Context) {
	render(c, http.StatusOK, "login.tmpl", gin.H{"Username": ""})
}

func LoginPost(c *gin.Context) {
	r := UserLoginRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		render(c, http.StatusBadRequest, "login.tmpl", gin.H{"Error": err.Error(), "Username": r.Username})
		return
	}
	user, success := models.UserLogin(r.Username, r.Password)
	if !success {
		render(c, http.StatusOK, "login.tmpl", gin.H{"Error": "Please enter a correct username and password.", "Username": r.Username})
		return
	}
	auth.LoadSession(c).LoginUser(user.ID)
	c.Redirect(http.StatusSeeOther, "/")
}

func Logout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusSeeOther, "/")
}

func Profile(c *gin.Context, user *models.User) {
	render(c, http.StatusOK, "profile.tmpl", gin.H{"User": user, "Profile": user.Profile})
}
