package request

// WebhookEvent is the gateway's delivery envelope.
type WebhookEvent struct {
	Event    string      `json:"event"`
	Instance string      `json:"instance"`
	Data     WebhookData `json:"data"`
}

// WebhookData carries the message payload of a messages.upsert event.
type WebhookData struct {
	Key      WebhookKey     `json:"key"`
	PushName string         `json:"pushName"`
	Message  WebhookMessage `json:"message"`
}

// WebhookKey identifies the message origin.
type WebhookKey struct {
	FromMe    bool   `json:"fromMe"`
	RemoteJid string `json:"remoteJid"`
}

// WebhookMessage holds the payload variants. Exactly which pointer is set
// decides the stored message type.
type WebhookMessage struct {
	Conversation        string               `json:"conversation"`
	ExtendedTextMessage *ExtendedTextMessage `json:"extendedTextMessage"`
	ImageMessage        *ImageMessage        `json:"imageMessage"`
	AudioMessage        *AudioMessage        `json:"audioMessage"`
}

// ExtendedTextMessage is the quoted or link-preview text variant.
type ExtendedTextMessage struct {
	Text string `json:"text"`
}

// ImageMessage is the image variant. Only the caption is stored.
type ImageMessage struct {
	Caption string `json:"caption"`
}

// AudioMessage is the audio variant. No textual content.
type AudioMessage struct {
	Seconds int `json:"seconds"`
}
