package router

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

func (r *Router) registerWhatsappRoutes(engine *gin.Engine) {
	group := engine.Group("/api/whatsapp", middleware.JWTAuth())
	{
		group.GET("/connections", r.handlers.Whatsapp.ListConnections)
		group.POST("/connections", r.handlers.Whatsapp.CreateConnection)
		group.POST("/connections/state", r.handlers.Whatsapp.GetConnectionState)
		group.GET("/connections/status", r.handlers.Whatsapp.SyncStatus)
		group.POST("/connections/delete", r.handlers.Whatsapp.DeleteConnection)
		group.POST("/contacts/sync", r.handlers.Whatsapp.SyncContacts)
	}
}
