package repository

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"

	"gorm.io/gorm"
)

type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates the tenant repository.
func NewTenantRepository(db *gorm.DB) TenantRepository {
	return &tenantRepository{db: db}
}

// FindByID looks a tenant up by primary key.
func (r *tenantRepository) FindByID(id uint) (*model.Tenant, error) {
	var tenant model.Tenant
	if err := r.db.First(&tenant, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "consulta de empresa id=%d", id)
	}
	return &tenant, nil
}

// Create inserts a new tenant.
func (r *tenantRepository) Create(tenant *model.Tenant) error {
	if err := r.db.Create(tenant).Error; err != nil {
		return wrapDBError(err, "criação de empresa")
	}
	return nil
}

// UpdateCredentials sets the Evolution API base URL and key.
func (r *tenantRepository) UpdateCredentials(id uint, baseURL, apiKey string) error {
	updates := map[string]interface{}{
		"evolution_api_url": baseURL,
		"evolution_api_key": apiKey,
	}
	if err := r.db.Model(&model.Tenant{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return wrapDBErrorf(err, "atualização de credenciais empresa id=%d", id)
	}
	return nil
}
