// Package inbox pushes new-message events to connected frontend clients.
// Persistence never depends on it: a failed publish is logged and dropped.
package inbox

// Event is one inbox push notification.
type Event struct {
	TenantID  uint   `json:"tenantId"`
	ContatoID uint   `json:"contatoId"`
	MessageID uint   `json:"messageId"`
	Remetente string `json:"remetente"`
	Conteudo  string `json:"conteudo"`
	Tipo      string `json:"tipo"`
}

// Broker routes events from producers (webhook, send path) to the hub.
// Two implementations exist: in-process channel and kafka, selected by the
// messageMode config key.
type Broker interface {
	Publish(event Event) error
	Close() error
}
