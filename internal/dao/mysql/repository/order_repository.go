package repository

import (
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"

	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates the order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// FindByTenantAndID loads one order with its items.
func (r *orderRepository) FindByTenantAndID(tenantID, id uint) (*model.Order, error) {
	var order model.Order
	err := r.db.Preload("Itens").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&order).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "consulta de pedido tenant=%d id=%d", tenantID, id)
	}
	return &order, nil
}

// FindByTenantID lists a tenant's orders.
func (r *orderRepository) FindByTenantID(tenantID uint) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.Where("tenant_id = ?", tenantID).Find(&orders).Error; err != nil {
		return nil, wrapDBErrorf(err, "listagem de pedidos tenant=%d", tenantID)
	}
	return orders, nil
}

// Create inserts an order row.
func (r *orderRepository) Create(order *model.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return wrapDBError(err, "criação de pedido")
	}
	return nil
}

// CreateItem inserts one order item row.
func (r *orderRepository) CreateItem(item *model.OrderItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return wrapDBError(err, "criação de item de pedido")
	}
	return nil
}

// DeleteByTenantAndID removes an order and its items.
func (r *orderRepository) DeleteByTenantAndID(tenantID, id uint) error {
	err := r.db.Where("pedido_id = ?", id).Delete(&model.OrderItem{}).Error
	if err != nil {
		return wrapDBErrorf(err, "remoção de itens do pedido id=%d", id)
	}
	err = r.db.Where("tenant_id = ? AND id = ?", tenantID, id).Delete(&model.Order{}).Error
	if err != nil {
		return wrapDBErrorf(err, "remoção de pedido tenant=%d id=%d", tenantID, id)
	}
	return nil
}
