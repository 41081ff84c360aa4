package respond

import "time"

// MessageRespond is one message of a conversation.
type MessageRespond struct {
	ID        uint      `json:"id"`
	ContatoID uint      `json:"contatoId"`
	Remetente string    `json:"remetente"`
	Conteudo  string    `json:"conteudo"`
	Tipo      string    `json:"tipo"`
	Lida      bool      `json:"lida"`
	CreatedAt time.Time `json:"createdAt"`
}

// ConversationRespond is one contact in the inbox listing.
type ConversationRespond struct {
	ContatoID    uint   `json:"contatoId"`
	Nome         string `json:"nome"`
	Telefone     string `json:"telefone"`
	Avatar       string `json:"avatar"`
	TicketStatus string `json:"ticketStatus"`
	NaoLidas     int64  `json:"naoLidas"`
}
