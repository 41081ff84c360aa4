// Package service wires the domain services together for injection into the
// HTTP layer.
package service

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dao/mysql/repository"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/gateway/evolution"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/auth"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/creds"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/inbox"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/lead"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/message"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/order"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/webhook"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/whatsapp"
)

// Services aggregates every domain service.
type Services struct {
	Auth     *auth.Service
	Whatsapp *whatsapp.Service
	Message  *message.Service
	Lead     *lead.Service
	Order    *order.Service
	Webhook  *webhook.Service
}

// NewServices builds the aggregate. The credential resolver is shared by
// every gateway-facing service.
func NewServices(repos *repository.Repositories, gateway evolution.Gateway, broker inbox.Broker) *Services {
	resolver := creds.NewResolver(repos.Tenant)
	return &Services{
		Auth:     auth.NewService(repos),
		Whatsapp: whatsapp.NewService(repos, gateway, resolver),
		Message:  message.NewService(repos, gateway, resolver, broker),
		Lead:     lead.NewService(repos),
		Order:    order.NewService(repos),
		Webhook:  webhook.NewService(repos, broker),
	}
}
