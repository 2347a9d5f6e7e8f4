package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fmpmcp"
	"fmpmcp/internal/fmp"
)

var maEndpoints = map[string]string{
	"latest": "mergers-acquisitions-latest",
	"search": "mergers-acquisitions-search",
}

// NewMergersAcquisitions returns the mergers_acquisitions tool.
func NewMergersAcquisitions(c *fmp.Client) (fmpmcp.Tool, error) {
	return newGroupedTool(c, "mergers_acquisitions",
		"Get merger and acquisition data: the latest deals, or a search by company name.",
		"ma_type", "Latest deals or a name search", maEndpoints)
}

var cotEndpoints = map[string]string{
	"report":   "commitment-of-traders-report",
	"analysis": "commitment-of-traders-analysis",
	"list":     "commitment-of-traders-list",
}

// NewCOTReport returns the cot_report tool for Commitment of Traders data.
func NewCOTReport(c *fmp.Client) (fmpmcp.Tool, error) {
	return newGroupedTool(c, "cot_report",
		"Get Commitment of Traders data: the raw report, its analysis, or the list of covered symbols.",
		"report_type", "Raw report, analysis, or the symbol list", cotEndpoints)
}

var dcfEndpoints = map[string]string{
	"discounted_cash_flow":         "discounted-cash-flow",
	"levered_discounted_cash_flow": "levered-discounted-cash-flow",
	"custom_discounted_cash_flow":  "custom-discounted-cash-flow",
}

// NewDCFValuation returns the dcf_valuation tool.
func NewDCFValuation(c *fmp.Client) (fmpmcp.Tool, error) {
	return newGroupedTool(c, "dcf_valuation",
		"Get discounted cash flow valuations: standard, levered, or custom.",
		"dcf_type", "Which DCF model to fetch", dcfEndpoints)
}

type bulkEODArgs struct {
	Date   string            `json:"date" description:"Trading date, YYYY-MM-DD"`
	Params map[string]string `json:"params,omitempty" description:"Extra query parameters passed through to the endpoint"`
}

// Validate checks the date layout before any network call.
func (a bulkEODArgs) Validate() error {
	if _, err := time.Parse("2006-01-02", a.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD, got %q", a.Date)
	}
	return nil
}

// NewBulkEOD returns the bulk_eod tool: end-of-day prices for every symbol on
// one trading date.
func NewBulkEOD(c *fmp.Client) (fmpmcp.Tool, error) {
	return fmpmcp.NewTool(
		"bulk_eod",
		"Get end-of-day prices for all symbols on one trading date.",
		func(ctx context.Context, args bulkEODArgs) (json.RawMessage, error) {
			params := queryValues(args.Params)
			params.Set("date", args.Date)
			return c.Get(ctx, "stable/eod-bulk", params)
		},
	)
}
