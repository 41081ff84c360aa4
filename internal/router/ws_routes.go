package router

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

func (r *Router) registerWsRoutes(engine *gin.Engine) {
	// Authenticated via ?token= since browsers cannot set headers on
	// websocket upgrades.
	engine.GET("/api/ws/inbox", middleware.JWTAuth(), r.handlers.Ws.InboxStream)
}
