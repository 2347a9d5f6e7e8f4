package tools

import (
	"context"
	"encoding/json"
	"net/url"

	"fmpmcp"
	"fmpmcp/internal/fmp"
)

type analystRatingsArgs struct {
	Symbol string `json:"symbol" description:"Ticker symbol, e.g. AAPL"`
	Mode   string `json:"mode,omitempty" enum:"snapshot,historical" default:"snapshot" description:"Latest snapshot or the historical series"`
}

// NewAnalystRatings returns the get_analyst_ratings tool. The mode selects
// between the latest-snapshot and historical-series upstream endpoints.
func NewAnalystRatings(c *fmp.Client) (fmpmcp.Tool, error) {
	return fmpmcp.NewTool(
		"get_analyst_ratings",
		"Get analyst ratings for a ticker: the latest snapshot, or the historical series.",
		func(ctx context.Context, args analystRatingsArgs) (json.RawMessage, error) {
			endpoint := "stable/ratings-snapshot"
			if args.Mode == "historical" {
				endpoint = "stable/ratings-historical"
			}
			params := url.Values{}
			params.Set("symbol", args.Symbol)
			return c.Get(ctx, endpoint, params)
		},
	)
}

type priceTargetInsightsArgs struct {
	Symbol string `json:"symbol" description:"Ticker symbol, e.g. AAPL"`
}

type priceTargetInsights struct {
	Consensus json.RawMessage `json:"consensus"`
	News      json.RawMessage `json:"news"`
}

// NewPriceTargetInsights returns the get_price_target_insights tool. It
// resolves the consensus price target first and fetches related news second;
// the news lookup is skipped when the consensus lookup fails, and each call
// carries its own timeout.
func NewPriceTargetInsights(c *fmp.Client) (fmpmcp.Tool, error) {
	return fmpmcp.NewTool(
		"get_price_target_insights",
		"Get the consensus analyst price target for a ticker together with recent price-target news.",
		func(ctx context.Context, args priceTargetInsightsArgs) (priceTargetInsights, error) {
			params := url.Values{}
			params.Set("symbol", args.Symbol)
			consensus, err := c.Get(ctx, "stable/price-target-consensus", params)
			if err != nil {
				return priceTargetInsights{}, err
			}
			newsParams := url.Values{}
			newsParams.Set("symbol", args.Symbol)
			news, err := c.Get(ctx, "stable/price-target-news", newsParams)
			if err != nil {
				return priceTargetInsights{}, err
			}
			return priceTargetInsights{Consensus: unwrapSingle(consensus), News: news}, nil
		},
	)
}

var analystEndpoints = map[string]string{
	"financial_estimates":      "analyst-estimates",
	"ratings_snapshot":         "ratings-snapshot",
	"ratings_historical":       "ratings-historical",
	"price_target_summary":     "price-target-summary",
	"price_target_consensus":   "price-target-consensus",
	"price_target_news":        "price-target-news",
	"price_target_latest_news": "price-target-latest-news",
	"grades":                   "grades",
	"grades_historical":        "grades-historical",
	"grades_consensus":         "grades-consensus",
	"grades_news":              "grades-news",
	"grades_latest_news":       "grades-latest-news",
}

// NewAnalystData returns the analyst_data tool: estimates, ratings, price
// targets, and grades keyed by an enumerated type.
func NewAnalystData(c *fmp.Client) (fmpmcp.Tool, error) {
	return newGroupedTool(c, "analyst_data",
		"Get analyst data: financial estimates, ratings, price targets, or grades.",
		"data_type", "Which analyst dataset to fetch", analystEndpoints)
}
