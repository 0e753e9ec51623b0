package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"marketplace/models"
	"marketplace/services/user"
	"marketplace/utils"
)

const (
	// CtxUserIDKey holds the authenticated user's hex ID in the gin context.
	CtxUserIDKey = "userID"
	// CtxUserKey holds the authenticated *models.User in the gin context.
	CtxUserKey = "currentUser"
	// CtxTokenKey holds the raw bearer token in the gin context.
	CtxTokenKey = "sessionToken"
)

// AuthRequired resolves the Authorization header to an authenticated user
// and aborts with 401 otherwise. The bearer scheme is matched
// case-insensitively; the resolved user and token are placed in the context
// for handlers.
func AuthRequired(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, utils.AuthError{Message: "missing Authorization header"})
			c.Abort()
			return
		}
		if len(authHeader) < len("bearer ") || !strings.EqualFold(authHeader[:len("bearer ")], "bearer ") {
			utils.RespondError(c, utils.AuthError{Message: "invalid auth scheme"})
			c.Abort()
			return
		}
		token := strings.TrimSpace(authHeader[len("bearer "):])

		userRec, err := svc.Authenticate(token)
		if err != nil {
			utils.RespondError(c, err)
			c.Abort()
			return
		}

		c.Set(CtxUserKey, userRec)
		c.Set(CtxUserIDKey, userRec.ID.Hex())
		c.Set(CtxTokenKey, token)
		c.Next()
	}
}

// CurrentUser extracts the authenticated user placed by AuthRequired.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(CtxUserKey)
	if !exists {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}
