package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zahub/admin-api/utils"
)

// AuthMiddleware protege el grupo /admin: exige un Bearer token válido y
// no revocado, y deja usuario_id y rol en el contexto.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			token = c.Query("token")
		}

		if token == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("token no encontrado"))
			c.Abort()
			return
		}

		if !strings.HasPrefix(token, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("formato de token no válido"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(token, "Bearer ")

		if utils.IsTokenBlacklisted(tokenString) {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("token no válido"))
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		if claims.UsuarioID == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("token sin usuario"))
			c.Abort()
			return
		}

		c.Set("usuario_id", claims.UsuarioID)
		c.Set("rol", claims.Rol)
		c.Next()
	}
}
