package comparison

import (
	"context"
	"encoding/json"
	"fmt"
	"price-compare/pkg/logger"
	"strings"
)

// Window labels used as keys of the price history payload, in months.
const (
	WindowOneMonth   = "1"
	WindowThreeMonth = "3"
)

type WindowTrend struct {
	FirstPrice int `json:"first_price"`
	LastPrice  int `json:"last_price"`
	Delta      int `json:"delta"`
}

// PriceTrend is derived per request from a product's price history and never stored.
type PriceTrend struct {
	OneMonth   WindowTrend `json:"one_month"`
	ThreeMonth WindowTrend `json:"three_month"`
}

type priceSample struct {
	Price *float64 `json:"price"`
}

// ParsePriceTrend extracts first/last prices of the "1" and "3" month windows.
// Any parse problem degrades to a zero trend; the failure is logged, not returned.
func ParsePriceTrend(ctx context.Context, log *logger.Logger, payload string) PriceTrend {
	if strings.TrimSpace(payload) == "" {
		return PriceTrend{}
	}

	trend, err := parsePriceTrend(payload)
	if err != nil {
		log.WarnContext(ctx, "Failed to parse price trend", logger.ErrorField(err))
		return PriceTrend{}
	}
	return trend
}

func parsePriceTrend(payload string) (PriceTrend, error) {
	var windows map[string][]priceSample
	if err := json.Unmarshal([]byte(payload), &windows); err != nil {
		return PriceTrend{}, fmt.Errorf("invalid price history payload: %w", err)
	}

	oneMonth, err := windowTrend(windows, WindowOneMonth)
	if err != nil {
		return PriceTrend{}, err
	}
	threeMonth, err := windowTrend(windows, WindowThreeMonth)
	if err != nil {
		return PriceTrend{}, err
	}

	return PriceTrend{OneMonth: oneMonth, ThreeMonth: threeMonth}, nil
}

func windowTrend(windows map[string][]priceSample, window string) (WindowTrend, error) {
	samples := windows[window]
	if len(samples) == 0 {
		return WindowTrend{}, nil
	}

	first, last := samples[0], samples[len(samples)-1]
	if first.Price == nil || last.Price == nil {
		return WindowTrend{}, fmt.Errorf("window %s: sample without price", window)
	}

	// int() truncates toward zero, prices are whole currency units
	firstPrice := int(*first.Price)
	lastPrice := int(*last.Price)
	return WindowTrend{
		FirstPrice: firstPrice,
		LastPrice:  lastPrice,
		Delta:      lastPrice - firstPrice,
	}, nil
}
