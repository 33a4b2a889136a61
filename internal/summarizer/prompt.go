package summarizer

import (
	"fmt"
	"strings"

	"pyronix-studio/internal/pkg/model"
)

// BuildPrompt assembles the French briefing prompt from the brief's fields.
func BuildPrompt(order model.Order) string {
	styles := make([]string, 0, len(order.Styles))
	for _, style := range order.Styles {
		if style == model.OtherValue && order.StylesOther != "" {
			styles = append(styles, order.StylesOther)
			continue
		}
		styles = append(styles, style)
	}

	return fmt.Sprintf(
		`Génère un résumé de briefing pour le projet "%s" de l'artiste %s. Styles: %s. Interprétation: %s. Mood: %s.`,
		order.Title,
		order.Handle,
		strings.Join(styles, ", "),
		order.VocalLanguageStyle.Display(),
		order.Mood.Display(),
	)
}
