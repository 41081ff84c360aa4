package repository

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"

	"gorm.io/gorm"
)

type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates the connection repository.
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

// FindByNome resolves a connection by its gateway instance name.
func (r *connectionRepository) FindByNome(nome string) (*model.WhatsappConnection, error) {
	var conn model.WhatsappConnection
	if err := r.db.Where("nome = ?", nome).First(&conn).Error; err != nil {
		return nil, wrapDBErrorf(err, "consulta de conexão nome=%s", nome)
	}
	return &conn, nil
}

// FindByTenantAndNome looks a connection up within a tenant.
func (r *connectionRepository) FindByTenantAndNome(tenantID uint, nome string) (*model.WhatsappConnection, error) {
	var conn model.WhatsappConnection
	err := r.db.Where("tenant_id = ? AND nome = ?", tenantID, nome).First(&conn).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "consulta de conexão tenant=%d nome=%s", tenantID, nome)
	}
	return &conn, nil
}

// FindByTenantID lists a tenant's connections.
func (r *connectionRepository) FindByTenantID(tenantID uint) ([]model.WhatsappConnection, error) {
	var conns []model.WhatsappConnection
	if err := r.db.Where("tenant_id = ?", tenantID).Find(&conns).Error; err != nil {
		return nil, wrapDBErrorf(err, "listagem de conexões tenant=%d", tenantID)
	}
	return conns, nil
}

// Create inserts a new connection.
func (r *connectionRepository) Create(conn *model.WhatsappConnection) error {
	if err := r.db.Create(conn).Error; err != nil {
		return wrapDBError(err, "criação de conexão")
	}
	return nil
}

// UpdateFields applies a partial update to one tenant's connection.
// The reconciler uses this so it can always write the status while leaving
// the stored QR code untouched when no fresh one was obtained.
func (r *connectionRepository) UpdateFields(tenantID uint, nome string, updates map[string]interface{}) error {
	err := r.db.Model(&model.WhatsappConnection{}).
		Where("tenant_id = ? AND nome = ?", tenantID, nome).
		Updates(updates).Error
	if err != nil {
		return wrapDBErrorf(err, "atualização de conexão tenant=%d nome=%s", tenantID, nome)
	}
	return nil
}

// DeleteByTenantAndNome removes a connection locally.
func (r *connectionRepository) DeleteByTenantAndNome(tenantID uint, nome string) error {
	err := r.db.Where("tenant_id = ? AND nome = ?", tenantID, nome).
		Delete(&model.WhatsappConnection{}).Error
	if err != nil {
		return wrapDBErrorf(err, "remoção de conexão tenant=%d nome=%s", tenantID, nome)
	}
	return nil
}
