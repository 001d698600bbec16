package middleware

import (
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/redhat-data-and-ai/coursenaut/pkg/config"
	"github.com/redhat-data-and-ai/coursenaut/pkg/logger"
)

const basicRealm = `Basic realm="Coursenaut"`

// BasicAuth checks credentials against the static api_server.auth.basic_users
// list. Operators and integrations use it; LMS accounts use UserBasicAuth.
func BasicAuth(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.APIServer.Auth.Enabled {
			c.Next()
			return
		}

		username, password, ok := basicCredentials(c)
		if !ok {
			return
		}

		match := slices.ContainsFunc(cfg.APIServer.Auth.BasicUsers, func(u config.BasicUser) bool {
			// both comparisons always run
			userOK := secretEqual(username, u.Username)
			passOK := secretEqual(password, u.Password)
			return userOK && passOK
		})
		if !match {
			logger.Logger(c.Request.Context()).WithField("username", username).Warn("basic auth rejected")
			unauthorized(c, "invalid credentials", "")
			return
		}

		c.Set(ContextClientID, username)
		c.Next()
	}
}
