package middleware

import (
	"context"
	"crypto/sha256"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/rs/zerolog"
	"github.com/yigit/campusadmin/internal/app/views"
)

const (
	// CSRFFieldName is the hidden form input carrying the token
	CSRFFieldName = "csrf_token"
	// CSRFCookieName holds the unmasked token
	CSRFCookieName = "campus_csrf"
)

type ginContextKey struct{}

// CSRF rejects unsafe requests whose form does not carry the token issued
// with the page. The token key is derived from the session secret. Without
// secure cookies the console is served over plain HTTP, so the HTTPS-only
// Referer check is skipped.
func CSRF(secret string, secure bool, logger zerolog.Logger) gin.HandlerFunc {
	key := sha256.Sum256([]byte("csrf:" + secret))

	protect := csrf.Protect(key[:],
		csrf.Secure(secure),
		csrf.HttpOnly(true),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.CookieName(CSRFCookieName),
		csrf.FieldName(CSRFFieldName),
		csrf.ErrorHandler(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			c := r.Context().Value(ginContextKey{}).(*gin.Context)
			logger.Warn().
				Err(csrf.FailureReason(r)).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("Rejected request without a valid CSRF token")

			c.Abort()
			c.HTML(http.StatusForbidden, "error", views.Page{
				Title: "Error",
				Data: views.ErrorData{
					Code:    http.StatusForbidden,
					Message: "This form has expired. Please go back, reload the page and try again.",
				},
			})
		})),
	)

	handler := protect(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		c := r.Context().Value(ginContextKey{}).(*gin.Context)
		c.Request = r
		c.Next()
	}))

	return func(c *gin.Context) {
		req := c.Request.WithContext(context.WithValue(c.Request.Context(), ginContextKey{}, c))
		if !secure {
			req = csrf.PlaintextHTTPRequest(req)
		}
		handler.ServeHTTP(c.Writer, req)
	}
}

// CSRFToken returns the masked token to embed in the page's forms
func CSRFToken(c *gin.Context) string {
	return csrf.Token(c.Request)
}
