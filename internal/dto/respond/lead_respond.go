package respond

import "time"

// LeadRespond is one contact viewed as a funnel lead.
type LeadRespond struct {
	ID          uint      `json:"id"`
	Nome        string    `json:"nome"`
	Telefone    string    `json:"telefone"`
	Email       string    `json:"email"`
	Avatar      string    `json:"avatar"`
	Status      string    `json:"status"`
	Observacoes string    `json:"observacoes"`
	VendedorID  uint      `json:"vendedorId"`
	CreatedAt   time.Time `json:"createdAt"`
}
