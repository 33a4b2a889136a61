// Package catalog holds the static reference data the order form and the
// admin views are built on.
package catalog

import (
	"slices"

	"pyronix-studio/internal/pkg/model"
)

var Platforms = []string{
	"TikTok", "YouTube", "Instagram", "Facebook", "Discord", model.OtherValue,
}

var MusicalStyles = []string{
	"Pop", "Rock", "Rap", "R&B", "Soul", "Électro",
	"House", "Techno", "Reggae", "Dancehall", "Afrobeat",
	"Amapiano", "Lo-fi", "Synthwave", "Trap", "Drill",
	"Funk", "Disco", "Metal", "Jazz", "Blues", "Gospel",
	"Reggaeton", "Indie Pop", "Phonk", "Cloud Rap", model.OtherValue,
}

var Languages = []string{
	"Français", "Anglais", "Espagnol", "Arabe", "Portugais", "Italien",
	"Allemand", "Russe", "Chinois", "Japonais", "Coréen", "Turc", model.OtherValue,
}

var Moods = []string{
	"Joyeux", "Mélancolique", "Énergique", "Mystérieux", "Agressif", "Romantique", "Sombre", "Épique", model.OtherValue,
}

type TempoOption struct {
	Value model.Tempo `json:"value"`
	Label string      `json:"label"`
}

var Tempos = []TempoOption{
	{Value: model.TempoSlow, Label: "Lent"},
	{Value: model.TempoMedium, Label: "Moyen"},
	{Value: model.TempoFast, Label: "Rapide"},
}

type DemoTrack struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Style     string `json:"style"`
	YoutubeID string `json:"youtube_id"`
}

var DemoTracks = []DemoTrack{
	{ID: "1", Title: "T'es pas seul", Style: "Deep Emotion", YoutubeID: "PLArkz_K4_Q"},
	{ID: "2", Title: "Je t'aime encore dans le vide", Style: "Énergie Pure", YoutubeID: "lZYYcAYRnuM"},
	{ID: "3", Title: "Jusqu'à l'aube", Style: "Vibe Nocturne", YoutubeID: "mH35SU_dzDg"},
}

func IsPlatform(v string) bool {
	return slices.Contains(Platforms, v)
}

func IsMusicalStyle(v string) bool {
	return slices.Contains(MusicalStyles, v)
}

func IsLanguage(v string) bool {
	return slices.Contains(Languages, v)
}

func IsMood(v string) bool {
	return slices.Contains(Moods, v)
}
