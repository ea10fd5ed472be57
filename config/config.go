package config

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
)

type Configuration struct {
	ApiPort   string `json:"api_port"`
	LogPath   string `json:"log_path"`
	StaticDir string `json:"static_dir"`

	MongoURI  string `json:"mongo_uri"`
	MongoDB   string `json:"mongo_db"`
	RedisAddr string `json:"redis_addr"` // empty = in-memory reset ledger

	Security struct {
		JwtSecret            string `json:"jwt_secret"`
		TokenTTLMinutes      int    `json:"token_ttl_minutes"`
		ResetTokenTTLMinutes int    `json:"reset_token_ttl_minutes"`
	} `json:"security"`

	Google struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
		RedirectURL  string `json:"redirect_url"`
	} `json:"google"`
}

func Get(path string) Configuration {
	var c Configuration

	b, err := os.ReadFile(path)
	if err != nil {
		logrus.WithError(err).Warnf("config: %s not found, using defaults and env", path)
	} else if err := json.Unmarshal(b, &c); err != nil {
		logrus.WithError(err).Fatalf("config: invalid json in %s", path)
	}

	// env overrides for secrets (so they can change without rebuild)
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Security.JwtSecret = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.MongoURI = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.RedisAddr = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		c.Google.ClientID = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_SECRET"); v != "" {
		c.Google.ClientSecret = v
	}

	// defaults (pra evitar nil/zero chato)
	if c.ApiPort == "" {
		c.ApiPort = "3000"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.MongoURI == "" {
		c.MongoURI = "mongodb://localhost:27017"
	}
	if c.MongoDB == "" {
		c.MongoDB = "filmoteca"
	}
	if c.Security.TokenTTLMinutes <= 0 {
		c.Security.TokenTTLMinutes = 60
	}
	if c.Security.ResetTokenTTLMinutes <= 0 {
		c.Security.ResetTokenTTLMinutes = 60
	}
	if c.Security.JwtSecret == "" {
		logrus.Warn("config: jwt_secret not set, using insecure default")
		c.Security.JwtSecret = "CHANGE_ME"
	}

	return c
}
