// Package router registers the HTTP routes, one file per module.
package router

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/handler"

	"github.com/gin-gonic/gin"
)

// Router aggregates the handlers for route registration.
type Router struct {
	handlers *handler.Handlers
}

// NewRouter creates the router.
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes mounts everything under /api. The webhook and the auth
// entry points are public; the rest sits behind JWT.
func (r *Router) RegisterRoutes(engine *gin.Engine) {
	r.registerWebhookRoutes(engine)
	r.registerAuthRoutes(engine)
	r.registerWhatsappRoutes(engine)
	r.registerMessageRoutes(engine)
	r.registerLeadRoutes(engine)
	r.registerOrderRoutes(engine)
	r.registerWsRoutes(engine)
}
