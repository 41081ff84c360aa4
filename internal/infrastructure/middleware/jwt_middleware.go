package middleware

import (
	"net/http"
	"strings"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/errorx"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code": errorx.CodeUnauthorized,
		"msg":  msg,
	})
}

// JWTAuth validates the access token and stores the identity in the context.
// Tokens without a tenant id are rejected: every protected operation is
// tenant scoped and there is no fallback tenant.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		switch {
		case authHeader != "":
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				abortUnauthorized(c, "formato de token inválido, use Bearer")
				return
			}
			tokenString = parts[1]
		default:
			// Browsers cannot set headers on websocket upgrades, so the
			// inbox stream passes the token as a query parameter.
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			abortUnauthorized(c, "faça login para continuar")
			return
		}

		claims, err := jwt.ParseToken(tokenString)
		if err != nil {
			abortUnauthorized(c, "token expirado ou inválido")
			return
		}
		if claims.Subject != "access_token" {
			abortUnauthorized(c, "use um access token para esta operação")
			return
		}
		if claims.TenantID == 0 {
			abortUnauthorized(c, "token sem empresa associada")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("tenant_id", claims.TenantID)
		c.Next()
	}
}
