package router

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

func (r *Router) registerMessageRoutes(engine *gin.Engine) {
	group := engine.Group("/api/messages", middleware.JWTAuth())
	{
		group.GET("/conversations", r.handlers.Message.ListConversations)
		group.GET("", r.handlers.Message.GetMessages)
		group.POST("/send", r.handlers.Message.SendMessage)
		group.POST("/read", r.handlers.Message.MarkAsRead)
		group.POST("/contacts", r.handlers.Message.UpsertContact)
	}
}
