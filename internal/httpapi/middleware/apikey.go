package middleware

import (
	"fmt"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/redhat-data-and-ai/coursenaut/pkg/config"
	"github.com/redhat-data-and-ai/coursenaut/pkg/logger"
)

const HeaderAPIKey = "X-API-Key"

// APIKeyAuth accepts any key listed in api_server.auth.api_keys. The client
// id set on the context is the key's position in that list, never the key.
func APIKeyAuth(cfg *config.AppConfig) gin.HandlerFunc {
	keys := cfg.APIServer.Auth.APIKeys
	return func(c *gin.Context) {
		if !cfg.APIServer.Auth.Enabled {
			c.Next()
			return
		}

		apiKey := c.GetHeader(HeaderAPIKey)
		if apiKey == "" {
			unauthorized(c, "API key required", "Add "+HeaderAPIKey+" header")
			return
		}

		idx := slices.IndexFunc(keys, func(k string) bool { return secretEqual(apiKey, k) })
		if idx < 0 {
			logger.Logger(c.Request.Context()).WithField("path", c.FullPath()).Warn("rejected request with unknown API key")
			unauthorized(c, "invalid API key", "")
			return
		}

		clientID := fmt.Sprintf("apikey-%d", idx)
		c.Set(ContextClientID, clientID)
		logger.Logger(c.Request.Context()).WithField("client_id", clientID).Debug("API request authenticated")
		c.Next()
	}
}
