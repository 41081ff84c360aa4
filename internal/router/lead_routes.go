package router

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

func (r *Router) registerLeadRoutes(engine *gin.Engine) {
	group := engine.Group("/api/leads", middleware.JWTAuth())
	{
		group.GET("", r.handlers.Lead.List)
		group.GET("/:id", r.handlers.Lead.GetByID)
		group.POST("", r.handlers.Lead.Create)
		group.POST("/update", r.handlers.Lead.Update)
		group.POST("/status", r.handlers.Lead.UpdateStatus)
		group.DELETE("/:id", r.handlers.Lead.Delete)
	}
}
