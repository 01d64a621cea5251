package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/campusadmin/internal/pkg/apperrors"
	"github.com/yigit/campusadmin/internal/pkg/auth"
)

// ClaimsKey is the gin context key holding the validated *auth.Claims
const ClaimsKey = "claims"

// BearerAuth rejects requests without a valid bearer token with the JSON
// error envelope.
func BearerAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrTokenInvalid, "Authorization header missing"))
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if apperrors.Is(err, auth.ErrExpiredToken) {
				HandleAPIError(c, apperrors.ErrTokenExpired)
				return
			}
			HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrTokenInvalid, err.Error()))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
