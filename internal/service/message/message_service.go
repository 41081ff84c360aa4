// Package message handles the inbox: conversations, history, sending and
// read tracking.
package message

import (
	"context"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dao/mysql/repository"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dto/respond"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/gateway/evolution"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/creds"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/inbox"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/enum/message/message_sender_enum"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/enum/message/message_type_enum"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/errorx"

	"go.uber.org/zap"
)

// Service implements inbox operations.
type Service struct {
	repos    *repository.Repositories
	gateway  evolution.Gateway
	resolver *creds.Resolver
	broker   inbox.Broker
}

// NewService creates the message service.
func NewService(repos *repository.Repositories, gateway evolution.Gateway, resolver *creds.Resolver, broker inbox.Broker) *Service {
	return &Service{repos: repos, gateway: gateway, resolver: resolver, broker: broker}
}

// ListConversations returns the tenant's contacts with their unread counts.
func (s *Service) ListConversations(tenantID uint) ([]respond.ConversationRespond, error) {
	contacts, err := s.repos.Contact.FindByTenantID(tenantID)
	if err != nil {
		return nil, err
	}
	result := make([]respond.ConversationRespond, 0, len(contacts))
	for _, c := range contacts {
		unread, err := s.repos.Message.CountUnread(tenantID, c.ID)
		if err != nil {
			zap.L().Warn("falha ao contar não lidas",
				zap.Uint("contatoId", c.ID), zap.Error(err))
			unread = 0
		}
		result = append(result, respond.ConversationRespond{
			ContatoID:    c.ID,
			Nome:         c.Nome,
			Telefone:     c.Telefone,
			Avatar:       c.Avatar,
			TicketStatus: c.TicketStatus,
			NaoLidas:     unread,
		})
	}
	return result, nil
}

// GetMessages returns one conversation in chronological order. A contact of
// another tenant comes back as not-found.
func (s *Service) GetMessages(tenantID, contatoID uint) ([]respond.MessageRespond, error) {
	if _, err := s.repos.Contact.FindByTenantAndID(tenantID, contatoID); err != nil {
		return nil, err
	}
	messages, err := s.repos.Message.FindByContato(tenantID, contatoID)
	if err != nil {
		return nil, err
	}
	result := make([]respond.MessageRespond, 0, len(messages))
	for _, m := range messages {
		result = append(result, respond.MessageRespond{
			ID:        m.ID,
			ContatoID: m.ContatoID,
			Remetente: m.Remetente,
			Conteudo:  m.Conteudo,
			Tipo:      m.Tipo,
			Lida:      m.Lida,
			CreatedAt: m.CreatedAt,
		})
	}
	return result, nil
}

// SendMessage delivers a text through the gateway and records the outbound
// message. Delivery failure is surfaced and nothing is persisted.
func (s *Service) SendMessage(ctx context.Context, tenantID, userID, contatoID uint, instanceName, conteudo string) (*respond.MessageRespond, error) {
	contact, err := s.repos.Contact.FindByTenantAndID(tenantID, contatoID)
	if err != nil {
		return nil, err
	}

	credentials, err := s.resolver.Get(tenantID)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.SendText(ctx, credentials, instanceName, contact.Telefone, conteudo); err != nil {
		return nil, err
	}

	message := &model.Message{
		TenantID:   tenantID,
		ContatoID:  contact.ID,
		VendedorID: userID,
		Remetente:  message_sender_enum.Usuario,
		Conteudo:   conteudo,
		Tipo:       message_type_enum.Texto,
		Lida:       true,
	}
	if err := s.repos.Message.Create(message); err != nil {
		return nil, err
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

	return &respond.MessageRespond{
		ID:        message.ID,
		ContatoID: message.ContatoID,
		Remetente: message.Remetente,
		Conteudo:  message.Conteudo,
		Tipo:      message.Tipo,
		Lida:      message.Lida,
		CreatedAt: message.CreatedAt,
	}, nil
}

// MarkAsRead clears the unread flag of a conversation.
func (s *Service) MarkAsRead(tenantID, contatoID uint) error {
	if _, err := s.repos.Contact.FindByTenantAndID(tenantID, contatoID); err != nil {
		return err
	}
	return s.repos.Message.MarkAsRead(tenantID, contatoID)
}

// UpsertContact returns the tenant's contact with the given phone, creating
// it when absent.
func (s *Service) UpsertContact(tenantID uint, nome, telefone, email string) (*model.Contact, error) {
	existing, err := s.repos.Contact.FindByTenantAndTelefone(tenantID, telefone)
	if err == nil {
		return existing, nil
	}
	if !errorx.IsNotFound(err) {
		return nil, err
	}

	contact := &model.Contact{
		TenantID: tenantID,
		Nome:     nome,
		Telefone: telefone,
		Email:    email,
	}
	if err := s.repos.Contact.Create(contact); err != nil {
		return nil, err
	}
	return contact, nil
}
