package controllers

import (
	"os"
	"time"

	"filmoteca/config"
	"filmoteca/ledger"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var conf config.Configuration
var resetLedger ledger.Ledger
var oauthConf *oauth2.Config

// Setup wires the controllers to config and the reset-token ledger.
// Call once at startup, before router.Initialize.
func Setup(cfg config.Configuration, l ledger.Ledger) {
	conf = cfg
	resetLedger = l
	oauthConf = &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
		Scopes:       []string{"openid", "profile", "email"},
		Endpoint:     google.Endpoint,
	}
}

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(200, payload)
}

func RespondMessage(c *gin.Context, msg string) {
	c.JSON(200, gin.H{"message": msg})
}

func jwtSecret() string {
	if conf.Security.JwtSecret != "" {
		return conf.Security.JwtSecret
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		return v
	}
	return "CHANGE_ME"
}

func sessionTTL() time.Duration {
	minutes := conf.Security.TokenTTLMinutes
	if minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}

func resetTokenTTL() time.Duration {
	minutes := conf.Security.ResetTokenTTLMinutes
	if minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}
