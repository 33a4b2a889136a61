package draft

import (
	"time"

	"pyronix-studio/internal/pkg/model"
)

// Step is one of the four linear stages of the order form.
type Step int

const (
	StepArtist Step = iota + 1
	StepSound
	StepVibe
	StepConfirm
)

// Draft is the in-progress, unsaved brief being composed by the artist.
type Draft struct {
	Email              string                   `json:"email"`
	Platform           model.Choice             `json:"platform"`
	Handle             string                   `json:"handle"`
	Title              string                   `json:"title"`
	Styles             []string                 `json:"styles"`
	StylesOther        string                   `json:"styles_other"`
	Voice              model.Voice              `json:"voice"`
	VocalLanguageStyle model.VocalLanguageStyle `json:"vocal_language_style"`
	Mood               model.Choice             `json:"mood"`
	Tempo              model.Tempo              `json:"tempo"`
	Energy             int                      `json:"energy"`
	Subject            string                   `json:"subject"`
	AcceptTerms        bool                     `json:"accept_terms"`
}

// NewDraft returns an empty draft with the form's starting selections.
func NewDraft() Draft {
	return Draft{
		Platform: model.Choice{Value: "TikTok"},
		Voice: model.Voice{
			Mode: model.VoiceSolo,
			Solo: &model.VoicePart{Gender: model.GenderFemale},
		},
		VocalLanguageStyle: model.VocalNative,
		Mood:               model.Choice{Value: "Énergique"},
		Tempo:              model.TempoMedium,
		Energy:             3,
	}
}

// toOrder maps the draft onto an order record. Identifier, status, reference
// and timestamps are assigned by the order service at insert time.
func (d Draft) toOrder() model.Order {
	return model.Order{
		Email:              d.Email,
		Platform:           d.Platform,
		Handle:             d.Handle,
		Title:              d.Title,
		Styles:             d.Styles,
		StylesOther:        d.StylesOther,
		Voice:              d.Voice,
		VocalLanguageStyle: d.VocalLanguageStyle,
		Mood:               d.Mood,
		Tempo:              d.Tempo,
		Energy:             d.Energy,
		Subject:            d.Subject,
	}
}

// Session is one form visitor's draft plus its position in the step machine.
type Session struct {
	ID         string            `json:"id"`
	Step       Step              `json:"step"`
	Draft      Draft             `json:"draft"`
	Errors     map[string]string `json:"errors,omitempty"`
	Submitting bool              `json:"-"`
	UpdatedAt  time.Time         `json:"-"`
}

// FieldPatch carries partial draft updates; nil fields are left untouched.
// Applying a patch performs no validation, constraints are checked only when
// a step transition or the final submit is attempted.
type FieldPatch struct {
	Email              *string                   `json:"email"`
	Platform           *model.Choice             `json:"platform"`
	Handle             *string                   `json:"handle"`
	Title              *string                   `json:"title"`
	StylesOther        *string                   `json:"styles_other"`
	Voice              *model.Voice              `json:"voice"`
	VocalLanguageStyle *model.VocalLanguageStyle `json:"vocal_language_style"`
	Mood               *model.Choice             `json:"mood"`
	Tempo              *model.Tempo              `json:"tempo"`
	Energy             *int                      `json:"energy"`
	Subject            *string                   `json:"subject"`
	AcceptTerms        *bool                     `json:"accept_terms"`
}

func (d *Draft) apply(patch FieldPatch) {
	if patch.Email != nil {
		d.Email = *patch.Email
	}
	if patch.Platform != nil {
		d.Platform = *patch.Platform
	}
	if patch.Handle != nil {
		d.Handle = *patch.Handle
	}
	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.StylesOther != nil {
		d.StylesOther = *patch.StylesOther
	}
	if patch.Voice != nil {
		d.Voice = *patch.Voice
		d.normalizeVoice()
	}
	if patch.VocalLanguageStyle != nil {
		d.VocalLanguageStyle = *patch.VocalLanguageStyle
	}
	if patch.Mood != nil {
		d.Mood = *patch.Mood
	}
	if patch.Tempo != nil {
		d.Tempo = *patch.Tempo
	}
	if patch.Energy != nil {
		d.Energy = *patch.Energy
	}
	if patch.Subject != nil {
		d.Subject = *patch.Subject
	}
	if patch.AcceptTerms != nil {
		d.AcceptTerms = *patch.AcceptTerms
	}
}

// normalizeVoice keeps the tagged union coherent after a mode switch: solo
// drafts always carry a solo part, duo drafts both duo parts.
func (d *Draft) normalizeVoice() {
	switch d.Voice.Mode {
	case model.VoiceDuo:
		if d.Voice.Duo == nil {
			d.Voice.Duo = &model.DuoConfig{
				Voice1: model.VoicePart{Gender: model.GenderFemale},
				Voice2: model.VoicePart{Gender: model.GenderMale},
			}
		}
		d.Voice.Solo = nil
	default:
		d.Voice.Mode = model.VoiceSolo
		if d.Voice.Solo == nil {
			d.Voice.Solo = &model.VoicePart{Gender: model.GenderFemale}
		}
		d.Voice.Duo = nil
	}
}
