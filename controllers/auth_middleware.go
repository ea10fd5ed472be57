package controllers

import (
	"net/http"
	"strings"

	dbpkg "filmoteca/db"
	"filmoteca/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ctxUserKey = "auth_user"

// AuthRequired validates the session token and loads the user into the
// context. The token travels in the `token` cookie; a Bearer header is
// accepted as fallback for API clients.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookieName)
		if err != nil || token == "" {
			h := c.GetHeader("Authorization")
			if strings.HasPrefix(strings.ToLower(h), "bearer ") {
				token = strings.TrimSpace(h[len("Bearer "):])
			}
		}
		if token == "" {
			RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}

		claims, err := ParseSessionToken(token)
		if err != nil {
			RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.Subject)
		if err != nil {
			RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}

		stores, ok := dbpkg.StoresInstance(c)
		if !ok {
			RespondError(c, "stores not configured in context", http.StatusInternalServerError)
			c.Abort()
			return
		}
		user, err := stores.Users.FindByID(c.Request.Context(), userID)
		if err != nil {
			RespondError(c, "user not found", http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// GetUserLogged returns the user loaded by AuthRequired.
func GetUserLogged(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
