package main

import (
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/eunoia-events/site/utils"
	"github.com/pocketbase/pocketbase/core"
)

// handleAdminLogin exchanges the shared dashboard password for a signed
// session token. The password never leaves the server config; the browser
// keeps the token for the duration of the session.
func handleAdminLogin(re *core.RequestEvent, app core.App) error {
	var input struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(re.Request.Body).Decode(&input); err != nil {
		return utils.BadRequestResponse(re, "Invalid request body")
	}

	secret := os.Getenv(utils.EnvAdminPassword)
	if secret == "" {
		log.Printf("[Auth] Login attempted but %s is not set", utils.EnvAdminPassword)
		return utils.InternalErrorResponse(re, "Admin password not configured")
	}

	if subtle.ConstantTimeCompare([]byte(input.Password), []byte(secret)) != 1 {
		utils.LogFromRequest(app, re, "login_failed", "admin_session", "", "failure", nil, "incorrect password")
		return utils.ErrorResponse(re, http.StatusUnauthorized, "Incorrect password. Please try again.")
	}

	token, err := utils.CreateAdminSession(utils.AdminSessionTTL)
	if err != nil {
		log.Printf("[Auth] Failed to create session: %v", err)
		return utils.InternalErrorResponse(re, "Failed to create session")
	}

	utils.LogFromRequest(app, re, "login", "admin_session", "", "success", nil, "")

	return utils.DataResponse(re, map[string]any{
		"token":     token,
		"expiresIn": int(utils.AdminSessionTTL.Seconds()),
	})
}
