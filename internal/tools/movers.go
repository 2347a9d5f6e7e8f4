package tools

import (
	"context"
	"encoding/json"

	"fmpmcp"
	"fmpmcp/internal/fmp"
)

// moversArgs is empty on purpose: the gainers/losers endpoints take no
// parameters beyond the API key.
type moversArgs struct{}

// NewTopGainers returns the get_top_gainers tool.
func NewTopGainers(c *fmp.Client) (fmpmcp.Tool, error) {
	return fmpmcp.NewTool(
		"get_top_gainers",
		"Get today's top gaining stocks.",
		func(ctx context.Context, _ moversArgs) (json.RawMessage, error) {
			return c.Get(ctx, "api/v3/stock_market/gainers", nil)
		},
	)
}

// NewTopLosers returns the get_top_losers tool.
func NewTopLosers(c *fmp.Client) (fmpmcp.Tool, error) {
	return fmpmcp.NewTool(
		"get_top_losers",
		"Get today's top losing stocks.",
		func(ctx context.Context, _ moversArgs) (json.RawMessage, error) {
			return c.Get(ctx, "api/v3/stock_market/losers", nil)
		},
	)
}
