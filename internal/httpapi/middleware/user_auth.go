package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/redhat-data-and-ai/coursenaut/pkg/config"
	"github.com/redhat-data-and-ai/coursenaut/pkg/store"
)

// UserBasicAuth authenticates requests as an LMS user: the basic auth
// username is the account email and the password is checked against the
// stored hash. The authenticated user id and role are set on the context.
func UserBasicAuth(cfg *config.AppConfig, users store.UserStoreInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.APIServer.Auth.Enabled {
			c.Next()
			return
		}
		email, password, ok := basicCredentials(c)
		if !ok {
			return
		}

		user, found := users.GetByEmail(c.Request.Context(), email)
		if !found || !user.Base().CheckPassword(password) {
			unauthorized(c, "invalid credentials", "")
			return
		}
		c.Set(ContextUserID, user.ID())
		c.Set(ContextUserRole, user.Role())
		c.Next()
	}
}
