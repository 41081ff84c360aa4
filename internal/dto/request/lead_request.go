package request

// CreateLeadRequest adds a contact to the funnel.
type CreateLeadRequest struct {
	Nome        string `json:"nome" binding:"required"`
	Telefone    string `json:"telefone" binding:"required"`
	Email       string `json:"email"`
	Observacoes string `json:"observacoes"`
}

// UpdateLeadRequest edits lead fields. Zero values are left untouched.
type UpdateLeadRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Nome        string `json:"nome"`
	Telefone    string `json:"telefone"`
	Email       string `json:"email"`
	Observacoes string `json:"observacoes"`
	VendedorID  uint   `json:"vendedorId"`
}

// UpdateLeadStatusRequest moves a lead through the funnel.
type UpdateLeadStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}
