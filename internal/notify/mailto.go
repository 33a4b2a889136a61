// Package notify carries the best-effort operator handoff: a pre-filled
// mailto link returned to the client and an optional Telegram ping. Delivery
// is never confirmed and never gates a submission.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"pyronix-studio/internal/pkg/model"
)

// BuildMailto renders the pre-filled operator email as a mailto URL. The
// client opens it in the visitor's mail client; nothing is sent server-side.
func BuildMailto(operatorEmail string, order model.Order) string {
	subject := fmt.Sprintf("[STUDIO] COMMANDE : %s (%s)", order.Title, order.Handle)
	body := fmt.Sprintf(
		"NOUVELLE COMMANDE DISPONIBLE DANS LE DASHBOARD STUDIO\n\nArtiste: %s\nContact: %s\nRésumé IA: %s",
		order.Handle, order.Email, order.Summary,
	)

	return "mailto:" + operatorEmail + "?subject=" + escape(subject) + "&body=" + escape(body)
}

// escape is query escaping with %20 for spaces; '+' is not understood by
// mail clients inside mailto URLs.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
