package controllers

import (
	"errors"
	"net/http"

	dbpkg "filmoteca/db"
	"filmoteca/models"
	"filmoteca/store"
	"filmoteca/tools"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SignupRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Email    string `json:"email" form:"email"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Signup creates a user with role "user" and redirects to the login page.
// Duplicate username/email surfaces as a store error (500), not a 409.
func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" || req.Email == "" {
		RespondError(c, "username, password and email are required", http.StatusBadRequest)
		return
	}
	if !tools.ValidateEmail(req.Email) {
		RespondError(c, "invalid email", http.StatusBadRequest)
		return
	}

	stores, ok := dbpkg.StoresInstance(c)
	if !ok {
		RespondError(c, "stores not configured in context", http.StatusInternalServerError)
		return
	}

	hash, err := tools.HashPassword(req.Password)
	if err != nil {
		RespondError(c, "signup failed", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     models.ROLE_USER,
		Password: hash,
	}
	if err := stores.Users.Create(c.Request.Context(), &user); err != nil {
		logrus.WithError(err).WithField("username", req.Username).Error("signup: create user failed")
		RespondError(c, "signup failed", http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

// Login verifies credentials and sets the session cookie.
// Unknown username and wrong password answer identically (401) so the
// response does not reveal which factor failed.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	stores, ok := dbpkg.StoresInstance(c)
	if !ok {
		RespondError(c, "stores not configured in context", http.StatusInternalServerError)
		return
	}

	user, err := stores.Users.FindByUsername(c.Request.Context(), req.Username)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		RespondError(c, "login failed", http.StatusInternalServerError)
		return
	}
	if err != nil || !tools.CheckPasswordHash(req.Password, user.Password) {
		RespondError(c, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := SignSessionToken(user.ID.Hex(), user.Role, sessionTTL())
	if err != nil {
		RespondError(c, "login failed", http.StatusInternalServerError)
		return
	}

	setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears the session cookie. The issued token stays valid until
// its natural expiry; there is no server-side revocation.
func Logout(c *gin.Context) {
	clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/login")
}
