// Package connection_status_enum defines the locally stored lifecycle of a
// WhatsApp connection. The column is a free string, not a closed DB enum;
// matching is exact and case sensitive.
package connection_status_enum

const (
	Aguardando   = "aguardando"   // created, waiting for QR pairing
	Conectado    = "conectado"    // gateway reports state "open"
	Desconectado = "desconectado" // any other (or unknown) gateway state
)

// GatewayStateOpen is the single Evolution API state string that maps to
// Conectado; every other value maps to Desconectado.
const GatewayStateOpen = "open"
