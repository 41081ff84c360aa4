package handler

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dto/request"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/message"

	"github.com/gin-gonic/gin"
)

// MessageHandler exposes the inbox endpoints.
type MessageHandler struct {
	service *message.Service
}

// NewMessageHandler creates the message handler.
func NewMessageHandler(service *message.Service) *MessageHandler {
	return &MessageHandler{service: service}
}

// ListConversations returns the tenant's contacts with unread counts.
func (h *MessageHandler) ListConversations(c *gin.Context) {
	_, tenantID := currentUser(c)
	result, err := h.service.ListConversations(tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, result)
}

// GetMessages returns one conversation's history.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	var req request.GetMessagesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	_, tenantID := currentUser(c)
	result, err := h.service.GetMessages(tenantID, req.ContatoID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, result)
}

// SendMessage delivers a text and stores the outbound message.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	userID, tenantID := currentUser(c)
	result, err := h.service.SendMessage(c.Request.Context(), tenantID, userID, req.ContatoID, req.InstanceName, req.Conteudo)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, result)
}

// MarkAsRead clears the unread flag of a conversation.
func (h *MessageHandler) MarkAsRead(c *gin.Context) {
	var req request.MarkAsReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	_, tenantID := currentUser(c)
	if err := h.service.MarkAsRead(tenantID, req.ContatoID); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UpsertContact finds a contact by phone or creates it.
func (h *MessageHandler) UpsertContact(c *gin.Context) {
	var req request.UpsertContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	_, tenantID := currentUser(c)
	result, err := h.service.UpsertContact(tenantID, req.Nome, req.Telefone, req.Email)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, result)
}
