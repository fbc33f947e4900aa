package auth

import (
	"github.com/haldialf/tugas-sabinaa/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIdKey = "id"

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginUser(id uint64) {
	s.Set(userIdKey, id)
	s.Save()
}

func (s *Session) LogoutUser() {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	s.Save()
}

func (s *Session) User() (user models.User) {
	id := s.Get(userIdKey)
	if id == nil {
		return
	}
	uid, ok := id.(uint64)
	if !ok {
		return
	}
	user, err := models.UserByID(uid)
	if err != nil {
		return models.User{}
	}
	return user
}

// AddNotice queues a transient user-facing message, shown once by the next
// rendered page (the Django "messages" equivalent).
func (s *Session) AddNotice(message string) {
	s.AddFlash(message)
	s.Save()
}

// Notices drains and returns the queued messages.
func (s *Session) Notices() []string {
	flashes := s.Flashes()
	if len(flashes) > 0 {
		s.Save()
	}
	result := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if msg, ok := f.(string); ok {
			result = append(result, msg)
		}
	}
	return result
}
