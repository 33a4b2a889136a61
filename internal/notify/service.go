package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pyronix-studio/internal/pkg/config"
	"pyronix-studio/internal/pkg/model"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Service implements the operator handoff. The Telegram ping is optional;
// without a token the service only builds mailto links.
type Service struct {
	operatorEmail string
	api           *bot.Bot
	chatID        int64
}

func NewService(operatorEmail string, cfg *config.NotifyCfg) (*Service, error) {
	service := &Service{
		operatorEmail: operatorEmail,
	}

	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		slog.Info("Telegram notifications disabled")
		return service, nil
	}

	api, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot instance: %w", err)
	}
	service.api = api
	service.chatID = cfg.TelegramChatID

	return service, nil
}

func (s *Service) NewOrderMailto(order model.Order) string {
	return BuildMailto(s.operatorEmail, order)
}

// NotifyOperator pings the operator chat about a fresh order. Fire and
// forget: it returns immediately, runs on its own context and only logs
// failures.
func (s *Service) NotifyOperator(order model.Order) {
	if s.api == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		text := fmt.Sprintf(
			"<b>🎵 Nouvelle commande</b>\n\n<b>Projet:</b> %s\n<b>Artiste:</b> %s\n<b>Contact:</b> %s\n<b>Voix:</b> %s\n<b>Résumé:</b> %s",
			order.Title, order.Handle, order.Email, order.Voice.Display(), order.Summary,
		)
		if _, err := s.api.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    s.chatID,
			Text:      text,
			ParseMode: models.ParseModeHTML,
		}); err != nil {
			slog.Error("Error sending operator notification", "error", err, "orderID", order.ID)
		}
	}()
}
