package respond

import "time"

// OrderItemRespond is one line of an order. Prices in cents.
type OrderItemRespond struct {
	ID            uint   `json:"id"`
	ProdutoID     uint   `json:"produtoId"`
	Quantidade    int    `json:"quantidade"`
	PrecoUnitario int64  `json:"precoUnitario"`
	Subtotal      int64  `json:"subtotal"`
	Descricao     string `json:"descricao"`
}

// OrderRespond is one order with its computed total.
type OrderRespond struct {
	ID         uint               `json:"id"`
	ContatoID  uint               `json:"contatoId"`
	VendedorID uint               `json:"vendedorId"`
	Status     string             `json:"status"`
	ValorTotal int64              `json:"valorTotal"`
	Itens      []OrderItemRespond `json:"itens,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
}
