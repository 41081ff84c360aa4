// Package https_server builds the gin engine: middlewares, CORS and routes.
package https_server

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/handler"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/infrastructure/logger"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init assembles the engine. A blank gin.New is used so logging and recovery
// run through zap instead of gin's defaults.
func Init(handlers *handler.Handlers) *gin.Engine {
	engine := gin.New()

	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// TLS redirect stays off by default; a reverse proxy terminates TLS in
	// the usual deployment. Enable with:
	// engine.Use(middleware.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port))

	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)

	return engine
}
