package model

import (
	"gorm.io/gorm"
)

// Product is a sellable item of a tenant, referenced by order items.
type Product struct {
	gorm.Model

	TenantID uint `gorm:"column:tenant_id;index;not null"`

	Nome      string `gorm:"column:nome;type:varchar(100);not null"`
	Descricao string `gorm:"column:descricao;type:TEXT"`

	// Preco is the unit price in cents to avoid float drift.
	Preco int64 `gorm:"column:preco;not null"`

	Ativo bool `gorm:"column:ativo;not null;default:true"`
}

// TableName overrides the default table name.
func (Product) TableName() string {
	return "produtos"
}
