package respond

// ConnectionRespond is one stored connection row.
type ConnectionRespond struct {
	ID     uint   `json:"id"`
	Nome   string `json:"nome"`
	Numero string `json:"numero"`
	Status string `json:"status"`
	QrCode string `json:"qrCode,omitempty"`
}

// ConnectionStateRespond carries the reconciler result: the raw gateway state
// plus a QR code only when a fresh one was obtained in this call.
type ConnectionStateRespond struct {
	InstanceName string `json:"instanceName"`
	State        string `json:"state"`
	Conectado    bool   `json:"conectado"`
	QrCode       string `json:"qrCode,omitempty"`
}

// SyncContactsRespond summarizes one contact import run.
type SyncContactsRespond struct {
	Sincronizados int      `json:"sincronizados"`
	Atualizados   int      `json:"atualizados"`
	Erros         []string `json:"erros"`
}
