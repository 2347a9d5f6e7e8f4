package tools

import (
	"context"
	"encoding/json"
	"net/url"

	"fmpmcp"
	"fmpmcp/internal/fmp"
)

type financialStatementArgs struct {
	Symbol    string `json:"symbol" description:"Ticker symbol, e.g. AAPL"`
	Statement string `json:"statement" enum:"income,balance,cashflow" description:"Which statement to fetch"`
	Period    string `json:"period,omitempty" enum:"annual,quarter" default:"annual" description:"Reporting period"`
}

var statementEndpoints = map[string]string{
	"income":   "income-statement",
	"balance":  "balance-sheet-statement",
	"cashflow": "cash-flow-statement",
}

// NewFinancialStatement returns the get_financial_statement tool. The
// statement kind and period map to one upstream endpoint path; the rows come
// back as the provider sends them.
func NewFinancialStatement(c *fmp.Client) (fmpmcp.Tool, error) {
	return fmpmcp.NewTool(
		"get_financial_statement",
		"Get a company's income statement, balance sheet, or cash flow statement, annual or quarterly.",
		func(ctx context.Context, args financialStatementArgs) (json.RawMessage, error) {
			params := url.Values{}
			params.Set("period", args.Period)
			return c.Get(ctx, "api/v3/"+statementEndpoints[args.Statement]+"/"+args.Symbol, params)
		},
	)
}
