package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/redhat-data-and-ai/coursenaut/pkg/config"
	"github.com/redhat-data-and-ai/coursenaut/pkg/store"
)

const (
	AuthModeAPIKey = "apikey"
	AuthModeBasic  = "basic"
	AuthModeUsers  = "users"
)

// Keys set on the gin context by the auth middlewares.
const (
	ContextClientID = "clientId"
	ContextUserID   = "userId"
	ContextUserRole = "userRole"
)

// Auth returns the middleware for the configured auth mode.
func Auth(cfg *config.AppConfig, users store.UserStoreInterface) gin.HandlerFunc {
	switch cfg.APIServer.Auth.Mode {
	case AuthModeBasic:
		return BasicAuth(cfg)
	case AuthModeUsers:
		return UserBasicAuth(cfg, users)
	default:
		return APIKeyAuth(cfg)
	}
}

func secretEqual(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func unauthorized(c *gin.Context, msg, hint string) {
	body := gin.H{"error": msg}
	if hint != "" {
		body["hint"] = hint
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, body)
}

// basicCredentials reads basic auth credentials, challenging the client and
// aborting when they are missing.
func basicCredentials(c *gin.Context) (username, password string, ok bool) {
	username, password, ok = c.Request.BasicAuth()
	if !ok || username == "" || password == "" {
		c.Header("WWW-Authenticate", basicRealm)
		unauthorized(c, "credentials required", "")
		return "", "", false
	}
	return username, password, true
}
