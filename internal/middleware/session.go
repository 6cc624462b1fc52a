package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/session"
)

const (
	// ContextKeySession holds the resolved *session.Session.
	ContextKeySession = "session"
	// ContextKeyClearSession holds a func() that destroys the current
	// session, used by the shared error path on a backend 401.
	ContextKeyClearSession = "clear_session"
)

// SessionResolver reads the session cookie, verifies its signature, and
// loads the session from the store. A missing, tampered, or expired
// cookie simply leaves no session in the context; the route guard decides
// what that means for each route.
func SessionResolver(codec *session.CookieCodec, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(session.CookieName)
		if err != nil || cookie == "" {
			c.Next()
			return
		}

		id, err := codec.Decode(cookie)
		if err != nil {
			c.Next()
			return
		}

		s, err := store.Get(c.Request.Context(), id)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextKeySession, s)
		c.Set(ContextKeyClearSession, func() {
			_ = store.Delete(c.Request.Context(), s.ID)
		})
		c.Next()
	}
}

// GetSession returns the resolved session, or nil when the request is
// unauthenticated.
func GetSession(c *gin.Context) *session.Session {
	val, exists := c.Get(ContextKeySession)
	if !exists {
		return nil
	}
	s, ok := val.(*session.Session)
	if !ok {
		return nil
	}
	return s
}

// GetRole returns the current role, empty when unauthenticated.
func GetRole(c *gin.Context) domain.Role {
	if s := GetSession(c); s != nil {
		return s.Role
	}
	return ""
}

// ClearSession destroys the current session, if any.
func ClearSession(c *gin.Context) {
	if val, exists := c.Get(ContextKeyClearSession); exists {
		val.(func())()
	}
	c.Set(ContextKeySession, nil)
}
