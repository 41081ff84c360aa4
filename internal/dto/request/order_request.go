package request

import "time"

// OrderItemRequest is one line of a new order. Prices travel in cents.
type OrderItemRequest struct {
	ProdutoID     uint   `json:"produtoId" binding:"required"`
	Quantidade    int    `json:"quantidade" binding:"required,min=1"`
	PrecoUnitario int64  `json:"precoUnitario" binding:"required,min=0"`
	Descricao     string `json:"descricao"`
}

// CreateOrderRequest opens an order for a contact. The total is computed
// server-side from the items.
type CreateOrderRequest struct {
	ContatoID   uint               `json:"contatoId" binding:"required"`
	Itens       []OrderItemRequest `json:"itens" binding:"required,min=1,dive"`
	DataEntrega *time.Time         `json:"dataEntrega"`
	Observacoes string             `json:"observacoes"`
}
