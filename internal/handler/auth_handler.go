package handler

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dto/request"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration and session endpoints.
type AuthHandler struct {
	service *auth.Service
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register creates a business and its first user.
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	result, err := h.service.Register(c.Request.Context(), req.NomeEmpresa, req.Nome, req.Email, req.Password)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, result)
}

// Login authenticates and returns a token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	result, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, result)
}

// Refresh rotates the token pair.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req request.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	result, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, result)
}

// Logout revokes the current session.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, _ := currentUser(c)
	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
