package telegram

import (
	"context"
	"net/http"
	"price-compare/internal/dto"
	"price-compare/pkg/logger"
	"price-compare/pkg/middleware"
	"price-compare/pkg/telegram"
	"strings"

	"github.com/labstack/echo/v4"
	"gopkg.in/telebot.v3"
)

const webhookPath = "/api/telegram/webhook"

func (t *TelegramBotHandler) WithContext(handler func(ctx context.Context, c telebot.Context) error) func(c telebot.Context) error {
	return middleware.WithContext(t.ctx, t.cfg.Telegram.TimeoutDuration, handler)
}

// RegisterWebhookRoute exposes the endpoint Telegram posts updates to in webhook mode.
func (t *TelegramBotHandler) RegisterWebhookRoute() {
	t.echo.POST(webhookPath, func(c echo.Context) error {
		var update telebot.Update
		if err := c.Bind(&update); err != nil {
			t.log.ErrorContext(t.ctx, "Cannot bind JSON", logger.ErrorField(err))
			badRequest := dto.NewBadRequestResponse(err.Error())
			return c.JSON(http.StatusBadRequest, badRequest)
		}
		t.bot.ProcessUpdate(update)
		return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, "ok", nil))
	})
}

func (t *TelegramBotHandler) RegisterHandlers() {
	t.bot.Handle("/start", t.WithContext(t.handleStart))
	t.bot.Handle("/help", t.WithContext(t.handleHelp))
	t.bot.Handle("/search", t.WithContext(t.handleSearch))
	t.bot.Handle("/compare", t.WithContext(t.handleCompare))
	t.bot.Handle("/similar", t.WithContext(t.handleSimilar))
	t.bot.Handle(telebot.OnText, t.WithContext(t.handleTextMessage))
}

func (t *TelegramBotHandler) handleStart(ctx context.Context, c telebot.Context) error {
	_, err := t.telegram.Send(ctx, c, startMessage)
	return err
}

func (t *TelegramBotHandler) handleHelp(ctx context.Context, c telebot.Context) error {
	_, err := t.telegram.Send(ctx, c, helpMessage)
	return err
}

func (t *TelegramBotHandler) handleTextMessage(ctx context.Context, c telebot.Context) error {
	if !strings.HasPrefix(c.Text(), "/") {
		_, err := t.telegram.Send(ctx, c, unknownCommandMessage)
		return err
	}
	return nil
}

func (t *TelegramBotHandler) sendLong(ctx context.Context, c telebot.Context, text string) error {
	for _, chunk := range telegram.SplitMessage(text, telegram.MaxMessageLength) {
		if _, err := t.telegram.Send(ctx, c, chunk); err != nil {
			t.log.ErrorContext(ctx, "Failed to send message", logger.ErrorField(err))
			return err
		}
	}
	return nil
}
