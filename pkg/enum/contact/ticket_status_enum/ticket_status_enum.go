// Package ticket_status_enum defines the support ticket state of a contact.
package ticket_status_enum

const (
	Aberto    = "aberto"
	Resolvido = "resolvido"
)
