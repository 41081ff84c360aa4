package handler

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dto/request"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/order"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the order endpoints.
type OrderHandler struct {
	service *order.Service
}

// NewOrderHandler creates the order handler.
func NewOrderHandler(service *order.Service) *OrderHandler {
	return &OrderHandler{service: service}
}

// List returns the tenant's orders.
func (h *OrderHandler) List(c *gin.Context) {
	_, tenantID := currentUser(c)
	result, err := h.service.List(tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, result)
}

// GetByID loads one order with its items.
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	_, tenantID := currentUser(c)
	result, err := h.service.GetByID(tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, result)
}

// Create opens an order for a contact.
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	userID, tenantID := currentUser(c)
	result, err := h.service.Create(tenantID, userID, &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, result)
}

// Delete removes an order and its items.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	_, tenantID := currentUser(c)
	if err := h.service.Delete(tenantID, id); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
