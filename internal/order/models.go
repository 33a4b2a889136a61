package order

import (
	"encoding/json"
	"fmt"
	"time"

	"pyronix-studio/internal/pkg/model"
)

type DBOrder struct {
	OrderID            string    `db:"order_id"`
	Reference          string    `db:"reference"`
	OrderStatus        string    `db:"order_status"`
	Email              string    `db:"email"`
	Platform           string    `db:"platform"`
	PlatformOther      string    `db:"platform_other"`
	Handle             string    `db:"handle"`
	Title              string    `db:"title"`
	Styles             []byte    `db:"styles"`
	StylesOther        string    `db:"styles_other"`
	Voice              []byte    `db:"voice"`
	VocalLanguageStyle string    `db:"vocal_language_style"`
	Mood               string    `db:"mood"`
	MoodOther          string    `db:"mood_other"`
	Tempo              string    `db:"tempo"`
	Energy             int       `db:"energy"`
	Subject            string    `db:"subject"`
	AISummary          *string   `db:"ai_summary"`
	CreatedAt          time.Time `db:"created_at"`
}

func toDBOrder(ord model.Order) (DBOrder, error) {
	styles, err := json.Marshal(ord.Styles)
	if err != nil {
		return DBOrder{}, fmt.Errorf("failed to encode styles: %w", err)
	}
	voice, err := json.Marshal(ord.Voice)
	if err != nil {
		return DBOrder{}, fmt.Errorf("failed to encode voice: %w", err)
	}

	var summary *string
	if ord.Summary != "" {
		summary = &ord.Summary
	}

	return DBOrder{
		OrderID:            ord.ID,
		Reference:          ord.Reference,
		OrderStatus:        string(ord.Status),
		Email:              ord.Email,
		Platform:           ord.Platform.Value,
		PlatformOther:      ord.Platform.Custom,
		Handle:             ord.Handle,
		Title:              ord.Title,
		Styles:             styles,
		StylesOther:        ord.StylesOther,
		Voice:              voice,
		VocalLanguageStyle: string(ord.VocalLanguageStyle),
		Mood:               ord.Mood.Value,
		MoodOther:          ord.Mood.Custom,
		Tempo:              string(ord.Tempo),
		Energy:             ord.Energy,
		Subject:            ord.Subject,
		AISummary:          summary,
		CreatedAt:          ord.CreatedAt,
	}, nil
}

func fromDBOrder(dbOrder DBOrder) (model.Order, error) {
	var styles []string
	if len(dbOrder.Styles) > 0 {
		if err := json.Unmarshal(dbOrder.Styles, &styles); err != nil {
			return model.Order{}, fmt.Errorf("failed to decode styles: %w", err)
		}
	}
	var voice model.Voice
	if len(dbOrder.Voice) > 0 {
		if err := json.Unmarshal(dbOrder.Voice, &voice); err != nil {
			return model.Order{}, fmt.Errorf("failed to decode voice: %w", err)
		}
	}

	var summary string
	if dbOrder.AISummary != nil {
		summary = *dbOrder.AISummary
	}

	return model.Order{
		ID:                 dbOrder.OrderID,
		Reference:          dbOrder.Reference,
		Status:             model.OrderStatus(dbOrder.OrderStatus),
		Email:              dbOrder.Email,
		Platform:           model.Choice{Value: dbOrder.Platform, Custom: dbOrder.PlatformOther},
		Handle:             dbOrder.Handle,
		Title:              dbOrder.Title,
		Styles:             styles,
		StylesOther:        dbOrder.StylesOther,
		Voice:              voice,
		VocalLanguageStyle: model.VocalLanguageStyle(dbOrder.VocalLanguageStyle),
		Mood:               model.Choice{Value: dbOrder.Mood, Custom: dbOrder.MoodOther},
		Tempo:              model.Tempo(dbOrder.Tempo),
		Energy:             dbOrder.Energy,
		Subject:            dbOrder.Subject,
		Summary:            summary,
		CreatedAt:          dbOrder.CreatedAt,
	}, nil
}
