package telegram

import (
	"context"
	"fmt"
	"price-compare/config"
	"price-compare/internal/service"
	"price-compare/pkg/logger"
	"price-compare/pkg/telegram"
	"price-compare/pkg/utils"
	"time"

	"github.com/labstack/echo/v4"
	"gopkg.in/telebot.v3"
)

type TelegramBotHandler struct {
	ctx      context.Context
	cfg      *config.Config
	bot      *telebot.Bot
	log      *logger.Logger
	telegram *telegram.TelegramRateLimiter
	echo     *echo.Echo
	service  *service.Service
	polling  bool
}

func NewTelegramBotHandler(
	ctx context.Context,
	cfg *config.Config,
	log *logger.Logger,
	bot *telebot.Bot,
	telegram *telegram.TelegramRateLimiter,
	echo *echo.Echo,
	service *service.Service) *TelegramBotHandler {
	return &TelegramBotHandler{
		ctx:      ctx,
		cfg:      cfg,
		log:      log,
		bot:      bot,
		telegram: telegram,
		echo:     echo,
		service:  service,
	}
}

// Start registers the bot commands and begins receiving updates, through the webhook
// route when telegram.webhook_url is set and by long polling otherwise.
func (t *TelegramBotHandler) Start() error {
	t.log.Info("Starting Telegram bot...")

	if t.cfg.Telegram.WebhookURL == "" {
		t.log.Info("Telegram webhook is not set, using long polling")
		if err := t.bot.RemoveWebhook(); err != nil {
			t.log.Warn("Failed to remove telegram webhook", logger.ErrorField(err))
		}
		t.RegisterHandlers()
		t.polling = true
		utils.GoSafe(t.bot.Start)
		t.telegram.StartCleanupExpired(t.ctx)
		return nil
	}

	t.log.Info("Setting webhook URL", logger.StringField("webhook_url", t.cfg.Telegram.WebhookURL))
	err := t.bot.SetWebhook(&telebot.Webhook{
		Endpoint: &telebot.WebhookEndpoint{
			PublicURL: t.cfg.Telegram.WebhookURL,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to set telegram webhook: %w", err)
	}

	t.RegisterWebhookRoute()
	t.RegisterHandlers()
	t.telegram.StartCleanupExpired(t.ctx)
	return nil
}

func (t *TelegramBotHandler) Stop() {
	t.log.Info("Stopping Telegram bot...")

	if t.polling {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		stopDone := make(chan struct{})
		go func() {
			t.bot.Stop()
			close(stopDone)
		}()

		select {
		case <-stopDone:
			t.log.Info("Telegram bot stopped successfully")
		case <-ctx.Done():
			t.log.Warn("Timeout while stopping bot, forcing shutdown")
		}
	}

	t.telegram.StopCleanupExpired()
	t.log.Info("Telegram bot shutdown completed")
}
