package request

// SendMessageRequest delivers a text to a contact through one instance.
type SendMessageRequest struct {
	ContatoID    uint   `json:"contatoId" binding:"required"`
	InstanceName string `json:"instanceName" binding:"required"`
	Conteudo     string `json:"conteudo" binding:"required"`
}

// GetMessagesRequest lists one conversation.
type GetMessagesRequest struct {
	ContatoID uint `json:"contatoId" form:"contatoId" binding:"required"`
}

// MarkAsReadRequest clears the unread flag of a conversation.
type MarkAsReadRequest struct {
	ContatoID uint `json:"contatoId" binding:"required"`
}

// UpsertContactRequest finds a contact by phone or creates it.
type UpsertContactRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Telefone string `json:"telefone" binding:"required"`
	Email    string `json:"email"`
}
