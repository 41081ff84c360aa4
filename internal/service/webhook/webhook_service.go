// Package webhook ingests inbound message deliveries from the gateway.
package webhook

import (
	"strings"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dao/mysql/repository"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dto/request"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/inbox"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/constants"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/enum/contact/lead_status_enum"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/enum/contact/ticket_status_enum"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/enum/message/message_sender_enum"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/errorx"

	"go.uber.org/zap"
)

const eventMessagesUpsert = "messages.upsert"

// Service processes gateway webhook deliveries.
type Service struct {
	repos  *repository.Repositories
	broker inbox.Broker
}

// NewService creates the webhook service.
func NewService(repos *repository.Repositories, broker inbox.Broker) *Service {
	return &Service{repos: repos, broker: broker}
}

// Process handles one delivery. Events that are not inbound messages, echoes
// of our own sends and messages for unknown instances are dropped silently:
// the gateway retries on anything but a 200, so only true processing
// failures return an error.
func (s *Service) Process(event *request.WebhookEvent) error {
	if event.Event != eventMessagesUpsert {
		return nil
	}
	if event.Data.Key.FromMe {
		return nil
	}

	conn, err := s.repos.Connection.FindByNome(event.Instance)
	if err != nil {
		if errorx.IsNotFound(err) {
			zap.L().Warn("webhook para instância desconhecida, descartando",
				zap.String("instance", event.Instance))
			return nil
		}
		return err
	}
	tenantID := conn.TenantID

	telefone := strings.TrimSuffix(event.Data.Key.RemoteJid, constants.WHATSAPP_JID_SUFFIX)
	if telefone == "" {
		zap.L().Warn("webhook sem remoteJid, descartando",
			zap.String("instance", event.Instance))
		return nil
	}

	contact, err := s.findOrCreateContact(tenantID, telefone, event.Data.PushName)
	if err != nil {
		return err
	}

	conteudo, tipo := classify(&event.Data.Message)
	message := &model.Message{
		TenantID:  tenantID,
		ContatoID: contact.ID,
		Remetente: message_sender_enum.Contato,
		Conteudo:  conteudo,
		Tipo:      tipo,
		Lida:      false,
	}
	if err := s.repos.Message.Create(message); err != nil {
		return err
	}

	if err := s.broker.Publish(inbox.Event{
		TenantID:  tenantID,
		ContatoID: contact.ID,
		MessageID: message.ID,
		Remetente: message.Remetente,
		Conteudo:  message.Conteudo,
		Tipo:      message.Tipo,
	}); err != nil {
		zap.L().Warn("falha ao publicar evento do inbox", zap.Error(err))
	}

	zap.L().Info("mensagem recebida salva",
		zap.Uint("tenantId", tenantID),
		zap.String("telefone", telefone),
		zap.String("tipo", tipo))
	return nil
}

// findOrCreateContact upserts the sender within the tenant. The lookup is
// tenant scoped: the same phone number can exist under two tenants without
// one seeing the other's conversation.
func (s *Service) findOrCreateContact(tenantID uint, telefone, pushName string) (*model.Contact, error) {
	contact, err := s.repos.Contact.FindByTenantAndTelefone(tenantID, telefone)
	if err == nil {
		return contact, nil
	}
	if !errorx.IsNotFound(err) {
		return nil, err
	}

	nome := pushName
	if nome == "" {
		nome = telefone
	}
	contact = &model.Contact{
		TenantID:     tenantID,
		Nome:         nome,
		Telefone:     telefone,
		Status:       lead_status_enum.Novo,
		TicketStatus: ticket_status_enum.Aberto,
	}
	if err := s.repos.Contact.Create(contact); err != nil {
		return nil, err
	}
	return contact, nil
}
