package repository

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"

	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates the product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// FindByTenantAndID looks a product up within a tenant.
func (r *productRepository) FindByTenantAndID(tenantID, id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).First(&product).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "consulta de produto tenant=%d id=%d", tenantID, id)
	}
	return &product, nil
}

// FindByTenantID lists a tenant's products.
func (r *productRepository) FindByTenantID(tenantID uint) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.Where("tenant_id = ?", tenantID).Find(&products).Error; err != nil {
		return nil, wrapDBErrorf(err, "listagem de produtos tenant=%d", tenantID)
	}
	return products, nil
}

// Create inserts a new product.
func (r *productRepository) Create(product *model.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return wrapDBError(err, "criação de produto")
	}
	return nil
}
