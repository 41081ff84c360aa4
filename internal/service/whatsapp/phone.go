package whatsapp

import (
	"strings"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/constants"
)

// normalizePhone strips the gateway JID qualifier, leaving the bare number.
func normalizePhone(jid string) string {
	return strings.TrimSuffix(jid, constants.WHATSAPP_JID_SUFFIX)
}
