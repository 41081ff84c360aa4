// Package message_sender_enum defines which side of the conversation a
// message row originated from.
package message_sender_enum

const (
	Usuario = "usuario" // outbound, sent by staff through the CRM
	Contato = "contato" // inbound, received from the customer
)
