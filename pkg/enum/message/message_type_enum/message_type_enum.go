// Package message_type_enum defines the closed set of message content types
// produced by the webhook payload classifier.
package message_type_enum

const (
	Texto  = "texto"
	Imagem = "imagem"
	Audio  = "audio"
)
