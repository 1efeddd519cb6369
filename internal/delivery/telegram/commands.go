package telegram

import (
	"context"
	"errors"
	"price-compare/pkg/logger"
	"strconv"
	"strings"

	"gopkg.in/telebot.v3"
)

var (
	errCompareUsage = errors.New("사용법: /compare <상품코드1> <상품코드2>")
	errSimilarUsage = errors.New("사용법: /similar <상품코드> [개수]")
)

func (t *TelegramBotHandler) handleSearch(ctx context.Context, c telebot.Context) error {
	query := strings.TrimSpace(c.Message().Payload)
	if query == "" {
		_, err := t.telegram.Send(ctx, c, "사용법: /search <검색어>")
		return err
	}

	result, err := t.service.CatalogService.Search(ctx, query)
	if err != nil {
		t.log.ErrorContext(ctx, "Failed to search products", logger.ErrorField(err))
		_, sendErr := t.telegram.Send(ctx, c, "검색 중 오류가 발생했습니다.")
		return sendErr
	}
	return t.sendLong(ctx, c, FormatSearchResult(result))
}

func (t *TelegramBotHandler) handleCompare(ctx context.Context, c telebot.Context) error {
	pcode1, pcode2, err := parseCompareArgs(c.Args())
	if err != nil {
		_, sendErr := t.telegram.Send(ctx, c, err.Error())
		return sendErr
	}

	if err := c.Notify(telebot.Typing); err != nil {
		t.log.WarnContext(ctx, "Failed to send typing action", logger.ErrorField(err))
	}

	analysis := t.service.ComparisonService.CompareProducts(ctx, pcode1, pcode2)
	return t.sendLong(ctx, c, analysis)
}

func (t *TelegramBotHandler) handleSimilar(ctx context.Context, c telebot.Context) error {
	pcode, top, err := parseSimilarArgs(c.Args())
	if err != nil {
		_, sendErr := t.telegram.Send(ctx, c, err.Error())
		return sendErr
	}

	result := t.service.SimilarityService.FindSimilarImages(ctx, pcode, top)
	return t.sendLong(ctx, c, FormatSimilarImages(result))
}

func parseCompareArgs(args []string) (int64, int64, error) {
	if len(args) != 2 {
		return 0, 0, errCompareUsage
	}
	pcode1, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, 0, errCompareUsage
	}
	pcode2, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, 0, errCompareUsage
	}
	return pcode1, pcode2, nil
}

// parseSimilarArgs returns top 0 when omitted so the configured default applies.
func parseSimilarArgs(args []string) (string, int, error) {
	if len(args) == 0 || len(args) > 2 {
		return "", 0, errSimilarUsage
	}
	if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
		return "", 0, errSimilarUsage
	}
	if len(args) == 1 {
		return args[0], 0, nil
	}
	top, err := strconv.Atoi(args[1])
	if err != nil || top < 1 || top > 100 {
		return "", 0, errSimilarUsage
	}
	return args[0], top, nil
}
