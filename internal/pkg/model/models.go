package model

import "time"

type OrderStatus string

const (
	StatusNew        OrderStatus = "new"
	StatusInProgress OrderStatus = "in_progress"
	StatusDone       OrderStatus = "done"
	StatusDelivered  OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusDone, StatusDelivered:
		return true
	}
	return false
}

type Tempo string

const (
	TempoSlow   Tempo = "lent"
	TempoMedium Tempo = "moyen"
	TempoFast   Tempo = "rapide"
)

func (t Tempo) Valid() bool {
	switch t {
	case TempoSlow, TempoMedium, TempoFast:
		return true
	}
	return false
}

type VocalLanguageStyle string

const (
	VocalNative         VocalLanguageStyle = "native"
	VocalFrenchAccented VocalLanguageStyle = "french_accented"
)

func (v VocalLanguageStyle) Valid() bool {
	return v == VocalNative || v == VocalFrenchAccented
}

// Display returns the label used in prompts and the operator email.
func (v VocalLanguageStyle) Display() string {
	if v == VocalFrenchAccented {
		return "Français avec accent"
	}
	return "Langue native"
}

type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

func (g Gender) Valid() bool {
	return g == GenderFemale || g == GenderMale
}

// OtherValue marks the free-text variant of every enum the form offers.
const OtherValue = "Autre"

// Choice is an enum selection that may carry a free-text override when the
// selected value is "Autre". It collapses to a single display string only at
// the boundary (summary prompt, operator email, persisted record).
type Choice struct {
	Value  string `json:"value"`
	Custom string `json:"custom,omitempty"`
}

func (c Choice) IsOther() bool {
	return c.Value == OtherValue
}

func (c Choice) Display() string {
	if c.IsOther() && c.Custom != "" {
		return c.Custom
	}
	return c.Value
}

type VoiceMode string

const (
	VoiceSolo VoiceMode = "solo"
	VoiceDuo  VoiceMode = "duo"
)

// VoicePart is a single singer: gender plus exactly one language selection.
type VoicePart struct {
	Gender   Gender `json:"gender"`
	Language Choice `json:"language"`
}

type DuoConfig struct {
	Voice1 VoicePart `json:"voice1"`
	Voice2 VoicePart `json:"voice2"`
}

// Voice is the vocal configuration: a solo singer or a two-voice duo, each
// part carrying its own language. Exactly one of Solo/Duo is set, matching
// Mode.
type Voice struct {
	Mode VoiceMode  `json:"mode"`
	Solo *VoicePart `json:"solo,omitempty"`
	Duo  *DuoConfig `json:"duo,omitempty"`
}

// Parts returns the active voice slots: one for solo, two for duo.
func (v Voice) Parts() []VoicePart {
	switch v.Mode {
	case VoiceDuo:
		if v.Duo == nil {
			return nil
		}
		return []VoicePart{v.Duo.Voice1, v.Duo.Voice2}
	default:
		if v.Solo == nil {
			return nil
		}
		return []VoicePart{*v.Solo}
	}
}

// Display renders the vocal configuration for the operator, e.g.
// "Femme Solo (Français)" or "Duo: Femme (Français) / Homme (Anglais)".
func (v Voice) Display() string {
	genderLabel := func(g Gender) string {
		if g == GenderMale {
			return "Homme"
		}
		return "Femme"
	}
	if v.Mode == VoiceDuo && v.Duo != nil {
		return "Duo: " + genderLabel(v.Duo.Voice1.Gender) + " (" + v.Duo.Voice1.Language.Display() + ")" +
			" / " + genderLabel(v.Duo.Voice2.Gender) + " (" + v.Duo.Voice2.Language.Display() + ")"
	}
	if v.Solo != nil {
		return genderLabel(v.Solo.Gender) + " Solo (" + v.Solo.Language.Display() + ")"
	}
	return ""
}

// Order is a submitted song brief with its triage lifecycle status.
type Order struct {
	ID                 string             `json:"id"`
	Reference          string             `json:"reference"`
	Status             OrderStatus        `json:"status"`
	Email              string             `json:"email"`
	Platform           Choice             `json:"platform"`
	Handle             string             `json:"handle"`
	Title              string             `json:"title"`
	Styles             []string           `json:"styles"`
	StylesOther        string             `json:"styles_other,omitempty"`
	Voice              Voice              `json:"voice"`
	VocalLanguageStyle VocalLanguageStyle `json:"vocal_language_style"`
	Mood               Choice             `json:"mood"`
	Tempo              Tempo              `json:"tempo"`
	Energy             int                `json:"energy"`
	Subject            string             `json:"subject"`
	Summary            string             `json:"ai_summary,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
}
