// Package model defines the database entities.
package model

import (
	"gorm.io/gorm"
)

// Tenant is a business account. Every contact, connection, message and order
// row references exactly one tenant; scoping is enforced in the repository
// queries, not by a database constraint.
type Tenant struct {
	gorm.Model

	// Nome is the business display name.
	Nome string `gorm:"column:nome;type:varchar(100);not null"`

	// EvolutionApiUrl is the per-tenant Evolution API base URL.
	// Empty means the integration is not configured yet.
	EvolutionApiUrl string `gorm:"column:evolution_api_url;type:varchar(255)"`

	// EvolutionApiKey is the per-tenant Evolution API key.
	EvolutionApiKey string `gorm:"column:evolution_api_key;type:varchar(255)"`

	// Ativo disables the whole account when false.
	Ativo bool `gorm:"column:ativo;not null;default:true"`
}

// TableName overrides the default table name.
func (Tenant) TableName() string {
	return "empresas"
}
