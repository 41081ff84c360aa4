// Package creds resolves per-tenant gateway credentials.
package creds

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dao/mysql/repository"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/gateway/evolution"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/errorx"
)

// Resolver loads the Evolution API credentials stored on the tenant row.
// Every gateway-facing operation goes through here first so a misconfigured
// tenant fails before any network call or database write happens.
type Resolver struct {
	tenants repository.TenantRepository
}

// NewResolver creates a Resolver backed by the tenant repository.
func NewResolver(tenants repository.TenantRepository) *Resolver {
	return &Resolver{tenants: tenants}
}

// Get returns the tenant's credentials or a config error when the
// integration was never set up (empty URL or key).
func (r *Resolver) Get(tenantID uint) (evolution.Credentials, error) {
	tenant, err := r.tenants.FindByID(tenantID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return evolution.Credentials{}, errorx.Wrapf(err, errorx.CodeConfigError,
				"empresa %d não encontrada", tenantID)
		}
		return evolution.Credentials{}, err
	}
	if tenant.EvolutionApiUrl == "" || tenant.EvolutionApiKey == "" {
		return evolution.Credentials{}, errorx.New(errorx.CodeConfigError,
			"API do WhatsApp não configurada para esta empresa")
	}
	return evolution.Credentials{
		BaseURL: tenant.EvolutionApiUrl,
		APIKey:  tenant.EvolutionApiKey,
	}, nil
}
