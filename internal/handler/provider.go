package handler

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/inbox"
)

// Handlers aggregates every HTTP handler for route registration.
type Handlers struct {
	Auth     *AuthHandler
	Whatsapp *WhatsappHandler
	Message  *MessageHandler
	Lead     *LeadHandler
	Order    *OrderHandler
	Webhook  *WebhookHandler
	Ws       *WsHandler
}

// NewHandlers wires handlers to the service aggregate.
func NewHandlers(services *service.Services, hub *inbox.Hub) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(services.Auth),
		Whatsapp: NewWhatsappHandler(services.Whatsapp),
		Message:  NewMessageHandler(services.Message),
		Lead:     NewLeadHandler(services.Lead),
		Order:    NewOrderHandler(services.Order),
		Webhook:  NewWebhookHandler(services.Webhook),
		Ws:       NewWsHandler(hub),
	}
}
