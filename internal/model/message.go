package model

import (
	"gorm.io/gorm"
)

// Message is one WhatsApp message of a conversation. Rows are immutable once
// created except for Lida, which is cleared in bulk by mark-as-read.
type Message struct {
	gorm.Model

	TenantID  uint `gorm:"column:tenant_id;index;not null"`
	ContatoID uint `gorm:"column:contato_id;index;not null"`

	// VendedorID is the staff member that sent an outbound message.
	// Zero for inbound messages.
	VendedorID uint `gorm:"column:vendedor_id"`

	// Remetente is the sender side: "usuario" (staff) or "contato" (customer).
	Remetente string `gorm:"column:remetente;type:varchar(10);not null"`

	Conteudo string `gorm:"column:conteudo;type:TEXT;not null"`

	// Tipo is the content type: "texto", "imagem" or "audio".
	Tipo string `gorm:"column:tipo;type:varchar(10);not null"`

	// Lida marks whether staff has seen the message. Outbound messages are
	// created already read.
	Lida bool `gorm:"column:lida;not null;default:false"`
}

// TableName overrides the default table name.
func (Message) TableName() string {
	return "mensagens"
}
