package repository

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"

	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates the contact repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// FindByTenantAndID looks a contact up within a tenant.
func (r *contactRepository) FindByTenantAndID(tenantID, id uint) (*model.Contact, error) {
	var contact model.Contact
	err := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).First(&contact).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "consulta de contato tenant=%d id=%d", tenantID, id)
	}
	return &contact, nil
}

// FindByTenantAndTelefone looks a contact up by bare phone number within a
// tenant. The tenant filter is deliberate: the same phone number may exist
// under two different tenants.
func (r *contactRepository) FindByTenantAndTelefone(tenantID uint, telefone string) (*model.Contact, error) {
	var contact model.Contact
	err := r.db.Where("tenant_id = ? AND telefone = ?", tenantID, telefone).First(&contact).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "consulta de contato tenant=%d telefone=%s", tenantID, telefone)
	}
	return &contact, nil
}

// FindByTenantID lists a tenant's contacts.
func (r *contactRepository) FindByTenantID(tenantID uint) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.Where("tenant_id = ?", tenantID).Find(&contacts).Error; err != nil {
		return nil, wrapDBErrorf(err, "listagem de contatos tenant=%d", tenantID)
	}
	return contacts, nil
}

// Create inserts a new contact.
func (r *contactRepository) Create(contact *model.Contact) error {
	if err := r.db.Create(contact).Error; err != nil {
		return wrapDBError(err, "criação de contato")
	}
	return nil
}

// UpdateByTenantAndID applies a partial update to one contact.
func (r *contactRepository) UpdateByTenantAndID(tenantID, id uint, updates map[string]interface{}) error {
	err := r.db.Model(&model.Contact{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Updates(updates).Error
	if err != nil {
		return wrapDBErrorf(err, "atualização de contato tenant=%d id=%d", tenantID, id)
	}
	return nil
}

// DeleteByTenantAndID removes a contact.
func (r *contactRepository) DeleteByTenantAndID(tenantID, id uint) error {
	err := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&model.Contact{}).Error
	if err != nil {
		return wrapDBErrorf(err, "remoção de contato tenant=%d id=%d", tenantID, id)
	}
	return nil
}
