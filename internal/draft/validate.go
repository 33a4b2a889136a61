package draft

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"pyronix-studio/internal/catalog"
	"pyronix-studio/internal/pkg/model"
)

const (
	// MaxStyles caps how many musical styles one brief may combine.
	MaxStyles = 4
	// MinSubjectLength is the narrative floor, counted in characters after
	// trimming. Exactly MinSubjectLength passes.
	MinSubjectLength = 200
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks one step's constraints and returns a field → message map,
// empty when the step is valid. Messages are the ones shown to the artist.
func Validate(d Draft, step Step) map[string]string {
	errs := make(map[string]string)

	switch step {
	case StepArtist:
		if !emailPattern.MatchString(d.Email) {
			errs["email"] = "Email valide requis"
		}
		if strings.TrimSpace(d.Handle) == "" {
			errs["handle"] = "Pseudo requis"
		}
		if !catalog.IsPlatform(d.Platform.Value) {
			errs["platform"] = "Plateforme inconnue"
		} else if d.Platform.IsOther() && strings.TrimSpace(d.Platform.Custom) == "" {
			errs["platform_other"] = "Précisez la plateforme"
		}

	case StepSound:
		if strings.TrimSpace(d.Title) == "" {
			errs["title"] = "Titre obligatoire"
		}
		if len(d.Styles) == 0 {
			errs["styles"] = "Choisissez au moins 1 style"
		}
		if hasOther(d.Styles) && strings.TrimSpace(d.StylesOther) == "" {
			errs["styles_other"] = "Précisez le style"
		}
		validateVoice(d.Voice, errs)

	case StepVibe:
		if utf8.RuneCountInString(strings.TrimSpace(d.Subject)) < MinSubjectLength {
			errs["subject"] = "L'histoire est trop courte (min 200 car.)"
		}
		if !catalog.IsMood(d.Mood.Value) {
			errs["mood"] = "Mood inconnu"
		} else if d.Mood.IsOther() && strings.TrimSpace(d.Mood.Custom) == "" {
			errs["mood_other"] = "Précisez le mood"
		}
		if !d.Tempo.Valid() {
			errs["tempo"] = "Tempo invalide"
		}
		if d.Energy < 1 || d.Energy > 5 {
			errs["energy"] = "Énergie invalide"
		}
		if !d.VocalLanguageStyle.Valid() {
			errs["vocal_language_style"] = "Interprétation invalide"
		}

	case StepConfirm:
		if !d.AcceptTerms {
			errs["accept_terms"] = "Veuillez confirmer avant l'envoi"
		}
	}

	return errs
}

// validateAll runs every step's validation for the final submit; later steps
// never mask earlier ones.
func validateAll(d Draft) map[string]string {
	errs := make(map[string]string)
	for step := StepArtist; step <= StepConfirm; step++ {
		for field, msg := range Validate(d, step) {
			if _, taken := errs[field]; !taken {
				errs[field] = msg
			}
		}
	}
	return errs
}

func validateVoice(voice model.Voice, errs map[string]string) {
	parts := voice.Parts()
	if len(parts) == 0 {
		errs["voice"] = "Configuration vocale invalide"
		return
	}
	for i, part := range parts {
		key := "languages"
		if voice.Mode == model.VoiceDuo {
			key = fmt.Sprintf("languages_%d", i+1)
		}
		if part.Language.Value == "" {
			errs[key] = "Choisissez au moins 1 langue"
			continue
		}
		if !catalog.IsLanguage(part.Language.Value) {
			errs[key] = "Langue inconnue"
			continue
		}
		if part.Language.IsOther() && strings.TrimSpace(part.Language.Custom) == "" {
			errs[key+"_other"] = "Précisez la langue"
		}
	}
}

func hasOther(values []string) bool {
	for _, v := range values {
		if v == model.OtherValue {
			return true
		}
	}
	return false
}
