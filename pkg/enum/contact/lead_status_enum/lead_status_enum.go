// Package lead_status_enum defines the sales lifecycle of a contact/lead.
package lead_status_enum

const (
	Novo          = "novo"
	EmAtendimento = "em_atendimento"
	Convertido    = "convertido"
	Perdido       = "perdido"
)

// Valid reports whether s is one of the known lead statuses.
func Valid(s string) bool {
	switch s {
	case Novo, EmAtendimento, Convertido, Perdido:
		return true
	}
	return false
}
