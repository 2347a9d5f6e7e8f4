package tools

import (
	"fmpmcp"
	"fmpmcp/internal/fmp"
)

var searchEndpoints = map[string]string{
	"symbol":            "search-symbol",
	"name":              "search-name",
	"cik":               "search-cik",
	"cusip":             "search-cusip",
	"isin":              "search-isin",
	"exchange_variants": "search-exchange-variants",
}

// NewSearchFinancialData returns the search_financial_data tool: identifier
// lookups keyed by an enumerated search type.
func NewSearchFinancialData(c *fmp.Client) (fmpmcp.Tool, error) {
	return newGroupedTool(c, "search_financial_data",
		"Search financial instruments by symbol, name, CIK, CUSIP, ISIN, or exchange variants.",
		"search_type", "Which identifier kind to search by", searchEndpoints)
}

var directoryEndpoints = map[string]string{
	"stock_list":                      "stock-list",
	"financial_statement_symbol_list": "financial-statement-symbol-list",
	"cik_list":                        "cik-list",
	"symbol_change":                   "symbol-change",
	"etf_list":                        "etf-list",
	"actively_trading_list":           "actively-trading-list",
	"earnings_transcript_list":        "earnings-transcript-list",
	"available_exchanges":             "available-exchanges",
	"available_sectors":               "available-sectors",
	"available_industries":            "available-industries",
	"available_countries":             "available-countries",
}

// NewDirectoryData returns the list_directory_data tool: reference lists keyed
// by an enumerated type.
func NewDirectoryData(c *fmp.Client) (fmpmcp.Tool, error) {
	return newGroupedTool(c, "list_directory_data",
		"Get reference directory data: symbol lists, exchange/sector/industry/country lists, and symbol changes.",
		"list_type", "Which directory dataset to fetch", directoryEndpoints)
}
