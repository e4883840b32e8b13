package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zahub/admin-api/utils"
)

// RequireRol corta la petición si el rol del token no está en la lista.
func RequireRol(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rol, exists := c.Get("rol")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("no autorizado"))
			c.Abort()
			return
		}

		for _, r := range roles {
			if rol == r {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, fmt.Errorf("se requiere rol %v", roles))
		c.Abort()
	}
}
