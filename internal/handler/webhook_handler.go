package handler

import (
	"net/http"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/config"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dto/request"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/webhook"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler receives gateway deliveries on the public endpoint.
type WebhookHandler struct {
	service *webhook.Service
}

// NewWebhookHandler creates the webhook handler.
func NewWebhookHandler(service *webhook.Service) *WebhookHandler {
	return &WebhookHandler{service: service}
}

// Handle acknowledges fast: the gateway retries on anything but a 200, so
// malformed bodies and irrelevant events are answered success immediately.
// Only a real processing failure returns 500, which triggers a redelivery.
func (h *WebhookHandler) Handle(c *gin.Context) {
	if token := config.GetConfig().EvolutionConfig.WebhookToken; token != "" {
		if c.GetHeader("apikey") != token {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false})
			return
		}
	}

	var event request.WebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		zap.L().Warn("webhook com corpo inválido, descartando", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if event.Event != "qrcode.updated" {
		zap.L().Info("webhook recebido",
			zap.String("event", event.Event),
			zap.String("instance", event.Instance))
	}

	if err := h.service.Process(&event); err != nil {
		zap.L().Error("falha ao processar webhook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
