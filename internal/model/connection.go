package model

import (
	"gorm.io/gorm"
)

// WhatsappConnection is a registered messaging number. Nome doubles as the
// Evolution API instance identifier and is unique within a tenant.
type WhatsappConnection struct {
	gorm.Model

	TenantID uint `gorm:"column:tenant_id;uniqueIndex:idx_tenant_nome;not null"`

	// Nome is the human assigned connection name, also used verbatim as the
	// gateway instance name for webhook tenant resolution.
	Nome string `gorm:"column:nome;uniqueIndex:idx_tenant_nome;type:varchar(100);not null"`

	// Numero is the phone number behind the instance. Filled lazily, the
	// gateway only knows it after pairing.
	Numero string `gorm:"column:numero;type:varchar(30)"`

	// Status is a free string ("aguardando", "conectado", "desconectado"),
	// written by the reconciler on every state check.
	Status string `gorm:"column:status;type:varchar(20);not null"`

	// QrCode holds the current pairing image payload (base64). Only
	// meaningful while disconnected; cleared once connected.
	QrCode string `gorm:"column:qr_code;type:TEXT"`
}

// TableName overrides the default table name.
func (WhatsappConnection) TableName() string {
	return "numeros_whatsapp"
}
