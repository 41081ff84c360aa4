package handler

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dto/request"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/whatsapp"

	"github.com/gin-gonic/gin"
)

// WhatsappHandler exposes connection management endpoints.
type WhatsappHandler struct {
	service *whatsapp.Service
}

// NewWhatsappHandler creates the whatsapp handler.
func NewWhatsappHandler(service *whatsapp.Service) *WhatsappHandler {
	return &WhatsappHandler{service: service}
}

// ListConnections returns the tenant's stored connections.
func (h *WhatsappHandler) ListConnections(c *gin.Context) {
	_, tenantID := currentUser(c)
	result, err := h.service.ListConnections(tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, result)
}

// CreateConnection registers a new instance and returns the initial QR.
func (h *WhatsappHandler) CreateConnection(c *gin.Context) {
	var req request.CreateConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	_, tenantID := currentUser(c)
	result, err := h.service.CreateConnection(c.Request.Context(), tenantID, req.InstanceName)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, result)
}

// GetConnectionState reconciles and returns the live state.
func (h *WhatsappHandler) GetConnectionState(c *gin.Context) {
	var req request.ConnectionStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	_, tenantID := currentUser(c)
	result, err := h.service.GetConnectionState(c.Request.Context(), tenantID, req.InstanceName)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, result)
}

// SyncStatus probes the live state without persisting anything.
func (h *WhatsappHandler) SyncStatus(c *gin.Context) {
	var req request.ConnectionStateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	_, tenantID := currentUser(c)
	result, err := h.service.SyncStatus(c.Request.Context(), tenantID, req.InstanceName)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, result)
}

// DeleteConnection removes an instance at the gateway and locally.
func (h *WhatsappHandler) DeleteConnection(c *gin.Context) {
	var req request.DeleteConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	_, tenantID := currentUser(c)
	if err := h.service.DeleteConnection(c.Request.Context(), tenantID, req.InstanceName); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// SyncContacts imports the instance's contact list.
func (h *WhatsappHandler) SyncContacts(c *gin.Context) {
	var req request.SyncContactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	userID, tenantID := currentUser(c)
	result, err := h.service.SyncContacts(c.Request.Context(), tenantID, userID, req.InstanceName)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, result)
}
