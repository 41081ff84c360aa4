package router

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

func (r *Router) registerOrderRoutes(engine *gin.Engine) {
	group := engine.Group("/api/orders", middleware.JWTAuth())
	{
		group.GET("", r.handlers.Order.List)
		group.GET("/:id", r.handlers.Order.GetByID)
		group.POST("", r.handlers.Order.Create)
		group.DELETE("/:id", r.handlers.Order.Delete)
	}
}
