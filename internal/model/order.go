package model

import (
	"database/sql"

	"gorm.io/gorm"
)

// Order is a sale registered against a contact. Items and the order itself
// are written in one transaction; ValorTotal is computed server side.
type Order struct {
	gorm.Model

	TenantID   uint `gorm:"column:tenant_id;index;not null"`
	ContatoID  uint `gorm:"column:contato_id;index;not null"`
	VendedorID uint `gorm:"column:vendedor_id;not null"`

	// ValorTotal is the order total in cents.
	ValorTotal int64 `gorm:"column:valor_total;not null"`

	// Status: aberto, concluido, cancelado.
	Status string `gorm:"column:status;type:varchar(20);not null;default:aberto"`

	DataEntrega sql.NullTime `gorm:"column:data_entrega;type:datetime"`

	Observacoes string `gorm:"column:observacoes;type:TEXT"`

	Itens []OrderItem `gorm:"foreignKey:PedidoID"`
}

// TableName overrides the default table name.
func (Order) TableName() string {
	return "pedidos"
}

// OrderItem is one line of an order.
type OrderItem struct {
	gorm.Model

	PedidoID  uint `gorm:"column:pedido_id;index;not null"`
	ProdutoID uint `gorm:"column:produto_id;not null"`

	Quantidade int `gorm:"column:quantidade;not null"`

	// PrecoUnitario is the unit price in cents at sale time; the product
	// price may change later.
	PrecoUnitario int64 `gorm:"column:preco_unitario;not null"`

	// Subtotal = Quantidade * PrecoUnitario, in cents.
	Subtotal int64 `gorm:"column:subtotal;not null"`
}

// TableName overrides the default table name.
func (OrderItem) TableName() string {
	return "itens_pedido"
}
