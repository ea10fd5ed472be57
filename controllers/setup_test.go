package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"filmoteca/config"
	"filmoteca/controllers"
	"filmoteca/db"
	"filmoteca/ledger"
	"filmoteca/models"
	"filmoteca/router"
	"filmoteca/store"
	"filmoteca/tools"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, store.Stores, *ledger.MemoryLedger) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var cfg config.Configuration
	cfg.ApiPort = "0"
	cfg.StaticDir = t.TempDir()
	cfg.Security.JwtSecret = "test-secret"
	cfg.Security.TokenTTLMinutes = 60
	cfg.Security.ResetTokenTTLMinutes = 60

	l := ledger.NewMemoryLedger()
	controllers.Setup(cfg, l)

	stores := store.NewMemoryStores()
	r := gin.New()
	r.Use(db.SetStoresToContext(stores))
	router.Initialize(r, cfg)

	return r, stores, l
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createUser(t *testing.T, stores store.Stores, username, email, password, role string) models.User {
	t.Helper()

	hash, err := tools.HashPassword(password)
	require.NoError(t, err)

	user := models.User{
		Username: username,
		Email:    email,
		Role:     role,
		Password: hash,
	}
	require.NoError(t, stores.Users.Create(context.Background(), &user))
	return user
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func loginCookie(t *testing.T, r *gin.Engine, username, password string) *http.Cookie {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusFound, w.Code)
	return sessionCookie(t, w)
}
