// Package tools is the catalog of FMP tools exposed over MCP. Each constructor
// builds one schema-described tool around an *fmp.Client: typed arguments in,
// one upstream GET (two for composite tools), optional reshaping, JSON out.
package tools

import (
	"net/url"

	"fmpmcp"
	"fmpmcp/internal/fmp"
)

// All returns every tool in the catalog. The first constructor error aborts;
// construction only fails on a broken schema, which is a programming error.
func All(c *fmp.Client) ([]fmpmcp.Tool, error) {
	ctors := []func(*fmp.Client) (fmpmcp.Tool, error){
		NewHistoricalPrices,
		NewStockInfo,
		NewNewsSentiment,
		NewStockActions,
		NewFinancialStatement,
		NewOptionExpirations,
		NewOptionChain,
		NewSearchCompanies,
		NewTopGainers,
		NewTopLosers,
		NewAnalystRatings,
		NewPriceTargetInsights,
		NewAnalystData,
		NewSearchFinancialData,
		NewDirectoryData,
		NewCorporateCalendar,
		NewCompanyInfoExtended,
		NewMergersAcquisitions,
		NewCOTReport,
		NewDCFValuation,
		NewCryptoMarketData,
		NewCryptoNews,
		NewBulkEOD,
	}
	out := make([]fmpmcp.Tool, 0, len(ctors))
	for _, ctor := range ctors {
		t, err := ctor(c)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// queryValues converts the open-ended params map of a pass-through tool into
// url.Values. A nil map yields empty values, never nil.
func queryValues(params map[string]string) url.Values {
	v := url.Values{}
	for key, val := range params {
		v.Set(key, val)
	}
	return v
}
