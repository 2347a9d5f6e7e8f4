package tools

import (
	"fmpmcp"
	"fmpmcp/internal/fmp"
)

var cryptoEndpoints = map[string]string{
	"list":                 "cryptocurrency-list",
	"quote":                "quote",
	"quote_short":          "quote-short",
	"batch_quotes":         "batch-crypto-quotes",
	"historical_eod_light": "historical-price-eod/light",
	"historical_eod_full":  "historical-price-eod/full",
	"intraday_1min":        "historical-chart/1min",
	"intraday_5min":        "historical-chart/5min",
	"intraday_1hour":       "historical-chart/1hour",
}

// NewCryptoMarketData returns the crypto_market_data tool: quotes and price
// history for cryptocurrencies keyed by an enumerated type.
func NewCryptoMarketData(c *fmp.Client) (fmpmcp.Tool, error) {
	return newGroupedTool(c, "crypto_market_data",
		"Get cryptocurrency market data: the coin list, quotes, and end-of-day or intraday price history.",
		"data_type", "Which crypto dataset to fetch", cryptoEndpoints)
}
