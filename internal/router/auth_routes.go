package router

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

func (r *Router) registerAuthRoutes(engine *gin.Engine) {
	group := engine.Group("/api/auth")
	{
		group.POST("/register", r.handlers.Auth.Register)
		group.POST("/login", r.handlers.Auth.Login)
		group.POST("/refresh", r.handlers.Auth.Refresh)
		group.POST("/logout", middleware.JWTAuth(), r.handlers.Auth.Logout)
	}
}
