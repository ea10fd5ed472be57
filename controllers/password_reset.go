package controllers

import (
	"errors"
	"net/http"
	"time"

	dbpkg "filmoteca/db"
	"filmoteca/ledger"
	"filmoteca/store"
	"filmoteca/tools"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// recoverMessage is returned whether or not the email exists, so the
// endpoint cannot be used to probe which accounts are registered.
const recoverMessage = "if the email exists, you will receive a recovery link"

type RecoverRequest struct {
	Email string `json:"email" form:"email"`
}

type RestoreRequest struct {
	Token       string `json:"token" form:"token"`
	NewPassword string `json:"newPassword" form:"newPassword"`
}

// RecoverPassword issues a single-use reset token valid for one hour.
// The token is only logged here; delivering it by email is out of scope.
func RecoverPassword(c *gin.Context) {
	var req RecoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Email = c.Query("email")
	}

	stores, ok := dbpkg.StoresInstance(c)
	if !ok {
		RespondError(c, "server error", http.StatusInternalServerError)
		return
	}

	_, err := stores.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		RespondError(c, "server error", http.StatusInternalServerError)
		return
	}

	if err == nil {
		token, err := issueResetToken(c, req.Email)
		if err != nil {
			RespondError(c, "server error", http.StatusInternalServerError)
			return
		}
		logrus.WithFields(logrus.Fields{
			"email": req.Email,
			"token": token,
		}).Info("password recovery token issued")
	}

	RespondMessage(c, recoverMessage)
}

// issueResetToken generates a fresh token and registers it in the
// ledger, retrying on the (unlikely) collision.
func issueResetToken(c *gin.Context, email string) (string, error) {
	expiresAt := time.Now().Add(resetTokenTTL())
	for attempt := 0; attempt < 3; attempt++ {
		token, err := ledger.NewToken()
		if err != nil {
			return "", err
		}
		err = resetLedger.Put(c.Request.Context(), token, email, expiresAt)
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, ledger.ErrTokenCollision) {
			return "", err
		}
	}
	return "", ledger.ErrTokenCollision
}

// RestorePassword consumes a reset token and persists the new password
// hash. The consume is atomic, so a token works exactly once.
func RestorePassword(c *gin.Context) {
	var req RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Token = c.Query("token")
		req.NewPassword = c.Query("newPassword")
	}
	if req.NewPassword == "" {
		RespondError(c, "newPassword is required", http.StatusBadRequest)
		return
	}

	stores, ok := dbpkg.StoresInstance(c)
	if !ok {
		RespondError(c, "server error", http.StatusInternalServerError)
		return
	}

	email, err := resetLedger.Consume(c.Request.Context(), req.Token)
	if errors.Is(err, ledger.ErrTokenInvalid) {
		RespondError(c, "invalid or expired token", http.StatusBadRequest)
		return
	}
	if err != nil {
		RespondError(c, "server error", http.StatusInternalServerError)
		return
	}

	hash, err := tools.HashPassword(req.NewPassword)
	if err != nil {
		RespondError(c, "server error", http.StatusInternalServerError)
		return
	}
	if err := stores.Users.UpdatePassword(c.Request.Context(), email, hash); err != nil {
		logrus.WithError(err).WithField("email", email).Error("restore: update password failed")
		RespondError(c, "server error", http.StatusInternalServerError)
		return
	}

	logrus.WithField("email", email).Info("password restored")
	RespondMessage(c, "password reset successfully")
}
