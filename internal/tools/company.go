package tools

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"fmpmcp"
	"fmpmcp/internal/fmp"
)

type stockInfoArgs struct {
	Symbol string `json:"symbol" description:"Ticker symbol, e.g. AAPL"`
}

// NewStockInfo returns the get_stock_info tool: company profile and key
// metrics for one ticker.
func NewStockInfo(c *fmp.Client) (fmpmcp.Tool, error) {
	return fmpmcp.NewTool(
		"get_stock_info",
		"Get the company profile and key metrics for a ticker: price, market cap, sector, description, and more.",
		func(ctx context.Context, args stockInfoArgs) (json.RawMessage, error) {
			payload, err := c.Get(ctx, "api/v3/profile/"+args.Symbol, nil)
			if err != nil {
				return nil, err
			}
			return unwrapSingle(payload), nil
		},
	)
}

// unwrapSingle returns the first element of a non-empty array payload.
// FMP wraps single-entity lookups in a list; empty arrays and non-array
// payloads pass through.
func unwrapSingle(payload json.RawMessage) json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(payload, &items); err == nil && len(items) > 0 {
		return items[0]
	}
	return payload
}

type searchCompaniesArgs struct {
	Query    string `json:"query" description:"Search keywords, e.g. a company name"`
	Limit    int    `json:"limit,omitempty" description:"Maximum number of results, default 10"`
	Exchange string `json:"exchange,omitempty" description:"Restrict results to one exchange code"`
}

// NewSearchCompanies returns the search_companies tool.
func NewSearchCompanies(c *fmp.Client) (fmpmcp.Tool, error) {
	return fmpmcp.NewTool(
		"search_companies",
		"Search companies by keyword, optionally restricted to one exchange.",
		func(ctx context.Context, args searchCompaniesArgs) (json.RawMessage, error) {
			limit := args.Limit
			if limit <= 0 {
				limit = 10
			}
			params := url.Values{}
			params.Set("query", args.Query)
			params.Set("limit", strconv.Itoa(limit))
			if args.Exchange != "" {
				params.Set("exchange", args.Exchange)
			}
			return c.Get(ctx, "api/v3/search", params)
		},
	)
}

var companyInfoEndpoints = map[string]string{
	"profile_cik":                      "profile-cik",
	"company_notes":                    "company-notes",
	"stock_peers":                      "stock-peers",
	"delisted_companies":               "delisted-companies",
	"employee_count":                   "employee-count",
	"historical_employee_count":        "historical-employee-count",
	"market_capitalization":            "market-capitalization",
	"market_capitalization_batch":      "market-capitalization-batch",
	"historical_market_capitalization": "historical-market-capitalization",
	"shares_float":                     "shares-float",
	"shares_float_all":                 "shares-float-all",
}

// NewCompanyInfoExtended returns the company_info_extended tool: extended
// company datasets keyed by an enumerated type.
func NewCompanyInfoExtended(c *fmp.Client) (fmpmcp.Tool, error) {
	return newGroupedTool(c, "company_info_extended",
		"Get extended company information: CIK profiles, notes, peers, employee counts, market cap, or shares float.",
		"info_type", "Which extended company dataset to fetch", companyInfoEndpoints)
}
