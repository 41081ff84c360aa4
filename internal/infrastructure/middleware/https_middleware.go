package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// TlsHandler redirects plain HTTP to HTTPS. Left out of the chain when a
// reverse proxy terminates TLS.
func TlsHandler(host string, port int) gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		SSLRedirect: true,
		SSLHost:     host + ":" + strconv.Itoa(port),
	})

	return func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			zap.L().Error("falha no redirecionamento TLS", zap.Error(err))
			c.Abort()
			return
		}
		c.Next()
	}
}
