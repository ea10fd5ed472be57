package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionCookieName = "token"

// SessionClaims é o payload do token de sessão: identidade + role.
type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SignSessionToken issues the session JWT carrying {sub: user id, role}.
func SignSessionToken(userID string, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret()))
}

// ParseSessionToken verifies signature and expiry of a session JWT.
func ParseSessionToken(token string) (SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret()), nil
	})
	if err != nil {
		return SessionClaims{}, err
	}
	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || claims.Subject == "" {
		return SessionClaims{}, errors.New("invalid claims")
	}
	return *claims, nil
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, int(sessionTTL().Seconds()), "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
