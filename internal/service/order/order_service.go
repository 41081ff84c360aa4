// Package order manages sales registered against contacts.
package order

import (
	"database/sql"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dao/mysql/repository"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dto/request"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dto/respond"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/enum/order/order_status_enum"
)

// Service implements tenant-scoped order operations.
type Service struct {
	repos *repository.Repositories
}

// NewService creates the order service.
func NewService(repos *repository.Repositories) *Service {
	return &Service{repos: repos}
}

func toRespond(o *model.Order) *respond.OrderRespond {
	items := make([]respond.OrderItemRespond, 0, len(o.Itens))
	for _, item := range o.Itens {
		items = append(items, respond.OrderItemRespond{
			ID:            item.ID,
			ProdutoID:     item.ProdutoID,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Subtotal:      item.Subtotal,
		})
	}
	return &respond.OrderRespond{
		ID:         o.ID,
		ContatoID:  o.ContatoID,
		VendedorID: o.VendedorID,
		Status:     o.Status,
		ValorTotal: o.ValorTotal,
		Itens:      items,
		CreatedAt:  o.CreatedAt,
	}
}

// List returns the tenant's orders without items.
func (s *Service) List(tenantID uint) ([]respond.OrderRespond, error) {
	orders, err := s.repos.Order.FindByTenantID(tenantID)
	if err != nil {
		return nil, err
	}
	result := make([]respond.OrderRespond, 0, len(orders))
	for i := range orders {
		result = append(result, *toRespond(&orders[i]))
	}
	return result, nil
}

// GetByID loads one order with its items.
func (s *Service) GetByID(tenantID, id uint) (*respond.OrderRespond, error) {
	order, err := s.repos.Order.FindByTenantAndID(tenantID, id)
	if err != nil {
		return nil, err
	}
	return toRespond(order), nil
}

// Create opens an order. The total is the sum of quantity times unit price,
// computed here and never taken from the client. Order and items are written
// in one transaction so a failed item insert rolls everything back.
func (s *Service) Create(tenantID, userID uint, req *request.CreateOrderRequest) (*respond.OrderRespond, error) {
	if _, err := s.repos.Contact.FindByTenantAndID(tenantID, req.ContatoID); err != nil {
		return nil, err
	}

	var valorTotal int64
	for _, item := range req.Itens {
		valorTotal += int64(item.Quantidade) * item.PrecoUnitario
	}

	order := &model.Order{
		TenantID:    tenantID,
		ContatoID:   req.ContatoID,
		VendedorID:  userID,
		ValorTotal:  valorTotal,
		Status:      order_status_enum.Aberto,
		Observacoes: req.Observacoes,
	}
	if req.DataEntrega != nil {
		order.DataEntrega = sql.NullTime{Time: *req.DataEntrega, Valid: true}
	}

	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Order.Create(order); err != nil {
			return err
		}
		for _, item := range req.Itens {
			orderItem := &model.OrderItem{
				PedidoID:      order.ID,
				ProdutoID:     item.ProdutoID,
				Quantidade:    item.Quantidade,
				PrecoUnitario: item.PrecoUnitario,
				Subtotal:      int64(item.Quantidade) * item.PrecoUnitario,
			}
			if err := tx.Order.CreateItem(orderItem); err != nil {
				return err
			}
			order.Itens = append(order.Itens, *orderItem)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRespond(order), nil
}

// Delete removes an order and its items.
func (s *Service) Delete(tenantID, id uint) error {
	if _, err := s.repos.Order.FindByTenantAndID(tenantID, id); err != nil {
		return err
	}
	return s.repos.Transaction(func(tx *repository.Repositories) error {
		return tx.Order.DeleteByTenantAndID(tenantID, id)
	})
}
