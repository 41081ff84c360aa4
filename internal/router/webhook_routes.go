package router

import (
	"github.com/gin-gonic/gin"
)

// The webhook endpoint is public: the gateway authenticates through the
// optional shared token checked inside the handler, not through JWT.
func (r *Router) registerWebhookRoutes(engine *gin.Engine) {
	engine.POST("/api/webhook", r.handlers.Webhook.Handle)
}
