package constants

const (
	CHANNEL_SIZE = 100 // inbox event channel buffer

	// MEDIA_PLACEHOLDER is stored as message content when the inbound
	// payload carries no textual representation at all.
	MEDIA_PLACEHOLDER = "[Media]"

	// WHATSAPP_JID_SUFFIX is the gateway qualifier appended to phone
	// numbers in webhook payloads ("5511999999999@s.whatsapp.net").
	WHATSAPP_JID_SUFFIX = "@s.whatsapp.net"

	REFRESH_TOKEN_EXPIRY_HOURS = 168 // refresh token lifetime, 7 days
)
