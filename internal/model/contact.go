package model

import (
	"gorm.io/gorm"
)

// Contact is a customer/lead of a tenant, unique per tenant by phone number.
// Created explicitly by staff or implicitly by the webhook on the first
// inbound message from an unknown number.
type Contact struct {
	gorm.Model

	TenantID uint `gorm:"column:tenant_id;uniqueIndex:idx_tenant_telefone;not null"`

	Nome string `gorm:"column:nome;type:varchar(100);not null"`

	// Telefone is the bare phone number, gateway qualifier stripped.
	Telefone string `gorm:"column:telefone;uniqueIndex:idx_tenant_telefone;type:varchar(30);not null"`

	Email string `gorm:"column:email;type:varchar(100)"`

	// Avatar is the WhatsApp profile picture URL, when known.
	Avatar string `gorm:"column:avatar;type:varchar(255)"`

	// Status is the sales lifecycle: novo, em_atendimento, convertido, perdido.
	Status string `gorm:"column:status;type:varchar(20);not null;default:novo"`

	// TicketStatus is the conversation state: aberto or resolvido.
	TicketStatus string `gorm:"column:ticket_status;type:varchar(20);not null;default:aberto"`

	Observacoes string `gorm:"column:observacoes;type:TEXT"`

	// VendedorID is the staff member who owns this lead, optional.
	VendedorID uint `gorm:"column:vendedor_id;index"`
}

// TableName overrides the default table name.
func (Contact) TableName() string {
	return "contatos"
}
