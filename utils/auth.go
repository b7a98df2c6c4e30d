package utils

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

// RequireAdminSession is middleware that requires a valid admin session
// token, passed as "Authorization: Bearer <token>" or "X-Admin-Session".
func RequireAdminSession(e *core.RequestEvent) error {
	token := sessionTokenFromRequest(e.Request)
	if token == "" {
		log.Printf("[Auth] Missing session token for %s from %s", e.Request.URL.Path, e.RealIP())
		return e.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Unauthorized",
		})
	}

	if _, err := ValidateAdminSession(token); err != nil {
		if errors.Is(err, ErrNoAdminPassword) {
			return e.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Admin password not configured",
			})
		}
		log.Printf("[Auth] Rejected session token for %s from %s: %v", e.Request.URL.Path, e.RealIP(), err)
		return e.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Unauthorized",
		})
	}

	return e.Next()
}

func sessionTokenFromRequest(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return r.Header.Get("X-Admin-Session")
}
