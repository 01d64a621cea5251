package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/campusadmin/internal/app/models"
	"github.com/yigit/campusadmin/internal/app/services"
	"github.com/yigit/campusadmin/internal/pkg/auth"
)

// SessionKey is the gin context key holding the *models.Session
const SessionKey = "session"

// LoginPath is where unauthenticated browsers are sent
const LoginPath = "/login"

// CookieConfig describes the session cookie
type CookieConfig struct {
	Name     string
	Lifetime time.Duration
	Secure   bool
}

// SessionMiddleware resolves the signed session cookie to a live session
type SessionMiddleware struct {
	jwtService *auth.JWTService
	sessions   services.SessionService
	cookie     CookieConfig
	logger     zerolog.Logger
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(jwtService *auth.JWTService, sessions services.SessionService, cookie CookieConfig, logger zerolog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		jwtService: jwtService,
		sessions:   sessions,
		cookie:     cookie,
		logger:     logger,
	}
}

// RequireSession lets the request through only with a valid session;
// otherwise the browser is redirected to the login screen.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := m.Lookup(c)
		if session == nil {
			m.ClearCookie(c)
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// Lookup returns the session named by the request's cookie, or nil
func (m *SessionMiddleware) Lookup(c *gin.Context) *models.Session {
	raw, err := c.Cookie(m.cookie.Name)
	if err != nil || raw == "" {
		return nil
	}

	claims, err := m.jwtService.ValidateToken(raw)
	if err != nil {
		m.logger.Debug().Err(err).Msg("Rejected session cookie")
		return nil
	}

	session, err := m.sessions.Get(claims.SessionID)
	if err != nil {
		m.logger.Debug().Err(err).Str("sid", claims.SessionID).Msg("Session cookie names no live session")
		return nil
	}
	return session
}

// IssueCookie writes the signed cookie for session
func (m *SessionMiddleware) IssueCookie(c *gin.Context, session *models.Session) error {
	token, _, err := m.jwtService.GenerateToken(session.User.Username, session.ID, session.User.Role)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie.Name, token, int(m.cookie.Lifetime.Seconds()), "/", "", m.cookie.Secure, true)
	return nil
}

// ClearCookie expires the session cookie
func (m *SessionMiddleware) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie.Name, "", -1, "/", "", m.cookie.Secure, true)
}

// CurrentSession returns the session stored by RequireSession
func CurrentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*models.Session)
	return session
}
