package forms

import (
	"net/mail"
	"strings"

	"github.com/haldialf/tugas-sabinaa/models"
)

const minPasswordLength = 8

type SignupForm struct {
	Username  string `form:"username"`
	Email     string `form:"email"`
	Password1 string `form:"password1"`
	Password2 string `form:"password2"`
}

func (f *SignupForm) Validate() map[string]string {
	errors := map[string]string{}
	f.Username = strings.TrimSpace(f.Username)
	if f.Username == "" {
		errors["username"] = "This field is required."
	} else if models.UsernameTaken(f.Username) {
		errors["username"] = "A user with that username already exists."
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		errors["email"] = "Enter a valid email address."
	}
	if len(f.Password1) < minPasswordLength {
		errors["password1"] = "This password is too short. It must contain at least 8 characters."
	}
	if f.Password1 != f.Password2 {
		errors["password2"] = "The two password fields didn't match."
	}
	return errors
}
