package handler

import (
	"strconv"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dto/request"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/lead"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// LeadHandler exposes the sales funnel endpoints.
type LeadHandler struct {
	service *lead.Service
}

// NewLeadHandler creates the lead handler.
func NewLeadHandler(service *lead.Service) *LeadHandler {
	return &LeadHandler{service: service}
}

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errorx.New(errorx.CodeInvalidParam, "id inválido")
	}
	return uint(id), nil
}

// List returns every lead of the tenant.
func (h *LeadHandler) List(c *gin.Context) {
	_, tenantID := currentUser(c)
	result, err := h.service.List(tenantID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, result)
}

// GetByID loads one lead.
func (h *LeadHandler) GetByID(c *gin.Context) {
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

// Create registers a new lead.
func (h *LeadHandler) Create(c *gin.Context) {
	var req request.CreateLeadRequest
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

// Update edits lead fields.
func (h *LeadHandler) Update(c *gin.Context) {
	var req request.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	_, tenantID := currentUser(c)
	if err := h.service.Update(tenantID, &req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UpdateStatus moves a lead through the funnel.
func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	var req request.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	_, tenantID := currentUser(c)
	if err := h.service.UpdateStatus(tenantID, req.ID, req.Status); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// Delete removes a lead.
func (h *LeadHandler) Delete(c *gin.Context) {
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
