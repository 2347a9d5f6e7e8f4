package tools

import (
	"context"
	"encoding/json"

	"fmpmcp"
	"fmpmcp/internal/fmp"
)

type stockActionsArgs struct {
	Symbol string `json:"symbol" description:"Ticker symbol, e.g. AAPL"`
}

type stockActions struct {
	Dividends json.RawMessage `json:"dividends"`
	Splits    json.RawMessage `json:"splits"`
}

// NewStockActions returns the get_stock_actions tool. It composes two lookups,
// dividends then splits; each carries the client's own timeout, and the splits
// call is skipped when the dividends call fails.
func NewStockActions(c *fmp.Client) (fmpmcp.Tool, error) {
	return fmpmcp.NewTool(
		"get_stock_actions",
		"Get the dividend and stock split history for a ticker.",
		func(ctx context.Context, args stockActionsArgs) (stockActions, error) {
			dividends, err := c.Get(ctx, "api/v3/historical-price-full/stock_dividend/"+args.Symbol, nil)
			if err != nil {
				return stockActions{}, err
			}
			splits, err := c.Get(ctx, "api/v3/historical-price-full/stock_split/"+args.Symbol, nil)
			if err != nil {
				return stockActions{}, err
			}
			return stockActions{
				Dividends: unwrapHistorical(dividends),
				Splits:    unwrapHistorical(splits),
			}, nil
		},
	)
}
