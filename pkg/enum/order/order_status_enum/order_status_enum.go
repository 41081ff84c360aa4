// Package order_status_enum defines the lifecycle of an order.
package order_status_enum

const (
	Aberto    = "aberto"
	Concluido = "concluido"
	Cancelado = "cancelado"
)
