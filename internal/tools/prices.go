package tools

import (
	"context"
	"encoding/json"
	"time"

	"fmpmcp"
	"fmpmcp/internal/fmp"
)

type historicalPricesArgs struct {
	Symbol   string `json:"symbol" description:"Ticker symbol, e.g. AAPL"`
	Period   string `json:"period,omitempty" enum:"1d,5d,1mo,3mo,6mo,1y,2y,5y,10y,ytd,max" default:"1mo" description:"How far back to return prices"`
	Interval string `json:"interval,omitempty" enum:"1min,5min,15min,30min,1hour,4hour,1day" default:"1day" description:"Bar interval"`
}

// periodWindows maps period values to lookback durations. ytd and max are
// handled separately.
var periodWindows = map[string]time.Duration{
	"1d":  24 * time.Hour,
	"5d":  5 * 24 * time.Hour,
	"1mo": 30 * 24 * time.Hour,
	"3mo": 90 * 24 * time.Hour,
	"6mo": 180 * 24 * time.Hour,
	"1y":  365 * 24 * time.Hour,
	"2y":  730 * 24 * time.Hour,
	"5y":  1825 * 24 * time.Hour,
	"10y": 3650 * 24 * time.Hour,
}

// NewHistoricalPrices returns the get_historical_stock_prices tool. Intraday
// intervals hit historical-chart, the daily interval hits
// historical-price-full; either way rows older than the requested period
// window are trimmed and reduced to the Date/Open/High/Low/Close/Volume
// columns.
func NewHistoricalPrices(c *fmp.Client) (fmpmcp.Tool, error) {
	return fmpmcp.NewTool(
		"get_historical_stock_prices",
		"Get historical prices for a ticker: date, open, high, low, close, and volume rows.",
		func(ctx context.Context, args historicalPricesArgs) (json.RawMessage, error) {
			path := "api/v3/historical-price-full/" + args.Symbol
			if args.Interval != "1day" {
				path = "api/v3/historical-chart/" + args.Interval + "/" + args.Symbol
			}
			payload, err := c.Get(ctx, path, nil)
			if err != nil {
				return nil, err
			}
			rows := trimToPeriod(unwrapHistorical(payload), args.Period, time.Now())
			return reshapePriceRows(rows), nil
		},
	)
}

// unwrapHistorical extracts the "historical" array from the daily-prices
// envelope. If the payload is already an array it is returned as-is.
func unwrapHistorical(payload json.RawMessage) json.RawMessage {
	var envelope struct {
		Historical json.RawMessage `json:"historical"`
	}
	if err := json.Unmarshal(payload, &envelope); err == nil && len(envelope.Historical) > 0 {
		return envelope.Historical
	}
	return payload
}

// trimToPeriod drops rows whose date falls before the period window ending at
// now. Unparseable rows or dates are kept; the provider's payload wins over
// our filtering.
func trimToPeriod(rows json.RawMessage, period string, now time.Time) json.RawMessage {
	var cutoff time.Time
	switch {
	case period == "ytd":
		cutoff = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	case period == "max" || period == "":
		return rows
	default:
		window, ok := periodWindows[period]
		if !ok {
			return rows
		}
		cutoff = now.Add(-window)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(rows, &items); err != nil {
		return rows
	}
	kept := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		var row struct {
			Date string `json:"date"`
		}
		if err := json.Unmarshal(item, &row); err != nil {
			kept = append(kept, item)
			continue
		}
		d, err := parseRowDate(row.Date)
		if err != nil || !d.Before(cutoff) {
			kept = append(kept, item)
		}
	}
	out, err := json.Marshal(kept)
	if err != nil {
		return rows
	}
	return out
}

// priceRow is the reduced OHLCV row returned to the caller.
type priceRow struct {
	Date   string  `json:"Date"`
	Open   float64 `json:"Open"`
	High   float64 `json:"High"`
	Low    float64 `json:"Low"`
	Close  float64 `json:"Close"`
	Volume int64   `json:"Volume"`
}

// reshapePriceRows reduces price rows to the Date/Open/High/Low/Close/Volume
// columns. Payloads that are not an array of rows pass through untouched.
func reshapePriceRows(rows json.RawMessage) json.RawMessage {
	var in []struct {
		Date   string  `json:"date"`
		Open   float64 `json:"open"`
		High   float64 `json:"high"`
		Low    float64 `json:"low"`
		Close  float64 `json:"close"`
		Volume int64   `json:"volume"`
	}
	if err := json.Unmarshal(rows, &in); err != nil {
		return rows
	}
	out := make([]priceRow, 0, len(in))
	for _, r := range in {
		out = append(out, priceRow(r))
	}
	b, err := json.Marshal(out)
	if err != nil {
		return rows
	}
	return b
}

// parseRowDate accepts the two date layouts FMP uses in price rows.
func parseRowDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
