package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	dbpkg "filmoteca/db"
	"filmoteca/models"
	"filmoteca/store"
	"filmoteca/tools"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const oauthStateCookie = "oauth_state"
const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

const loginErrorRedirect = "/login?error=google_auth_failed"

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleLogin starts the OAuth dance: random state in a short cookie,
// then redirect to Google's consent page.
func GoogleLogin(c *gin.Context) {
	state := uuid.NewString()
	c.SetCookie(oauthStateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusFound, oauthConf.AuthCodeURL(state))
}

// GoogleCallback completes the handshake: exchanges the code, fetches
// the profile, finds or creates the local user, and sets the session
// cookie. This is a browser-facing flow, so every failure redirects to
// the login page with an error flag instead of returning JSON.
func GoogleCallback(c *gin.Context) {
	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		c.Redirect(http.StatusFound, loginErrorRedirect)
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, loginErrorRedirect)
		return
	}

	ctx := c.Request.Context()
	oauthToken, err := oauthConf.Exchange(ctx, code)
	if err != nil {
		logrus.WithError(err).Error("google callback: code exchange failed")
		c.Redirect(http.StatusFound, loginErrorRedirect)
		return
	}

	resp, err := oauthConf.Client(ctx, oauthToken).Get(googleUserInfoURL)
	if err != nil {
		logrus.WithError(err).Error("google callback: userinfo request failed")
		c.Redirect(http.StatusFound, loginErrorRedirect)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.Redirect(http.StatusFound, loginErrorRedirect)
		return
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Email == "" {
		c.Redirect(http.StatusFound, loginErrorRedirect)
		return
	}

	stores, ok := dbpkg.StoresInstance(c)
	if !ok {
		c.Redirect(http.StatusFound, loginErrorRedirect)
		return
	}

	user, err := findOrCreateGoogleUser(c, stores, info)
	if err != nil {
		logrus.WithError(err).Error("google callback: find or create user failed")
		c.Redirect(http.StatusFound, loginErrorRedirect)
		return
	}

	token, err := SignSessionToken(user.ID.Hex(), user.Role, sessionTTL())
	if err != nil {
		c.Redirect(http.StatusFound, loginErrorRedirect)
		return
	}

	setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/dashboard")
}

func findOrCreateGoogleUser(c *gin.Context, stores store.Stores, info googleUserInfo) (models.User, error) {
	ctx := c.Request.Context()

	user, err := stores.Users.FindByEmail(ctx, info.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.User{}, err
	}

	// first Google login: local account with an unguessable password
	placeholder, err := randomPassword()
	if err != nil {
		return models.User{}, err
	}
	username := info.Name
	if username == "" {
		username = strings.SplitN(info.Email, "@", 2)[0]
	}

	user = models.User{
		Username: username,
		Email:    info.Email,
		Role:     models.ROLE_USER,
		Password: placeholder,
		GoogleID: info.ID,
	}
	if err := stores.Users.Create(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func randomPassword() (string, error) {
	return tools.HashPassword(uuid.NewString())
}
