package webhook

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dto/request"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/constants"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/enum/message/message_type_enum"
)

// classify derives the stored content and type from the payload variants.
// The type follows pointer presence (image before audio); the content falls
// through conversation, extended text, image caption and finally the media
// placeholder.
func classify(m *request.WebhookMessage) (conteudo, tipo string) {
	switch {
	case m.ImageMessage != nil:
		tipo = message_type_enum.Imagem
	case m.AudioMessage != nil:
		tipo = message_type_enum.Audio
	default:
		tipo = message_type_enum.Texto
	}

	switch {
	case m.Conversation != "":
		conteudo = m.Conversation
	case m.ExtendedTextMessage != nil && m.ExtendedTextMessage.Text != "":
		conteudo = m.ExtendedTextMessage.Text
	case m.ImageMessage != nil && m.ImageMessage.Caption != "":
		conteudo = m.ImageMessage.Caption
	default:
		conteudo = constants.MEDIA_PLACEHOLDER
	}
	return conteudo, tipo
}
