package tools

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockInfo_UnwrapsSingle(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/profile/AAPL", r.URL.Path)
		w.Write([]byte(`[{"symbol":"AAPL","companyName":"Apple Inc."}]`))
	})
	tool, err := NewStockInfo(c)
	require.NoError(t, err)

	out, err := tool.Execute(context.Background(), []byte(`{"symbol": "AAPL"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"symbol":"AAPL","companyName":"Apple Inc."}`, string(out))
}

func TestUnwrapSingle(t *testing.T) {
	assert.JSONEq(t, `{"a":1}`, string(unwrapSingle([]byte(`[{"a":1}]`))))
	// Multi-element arrays yield the first element.
	assert.JSONEq(t, `{"a":1}`, string(unwrapSingle([]byte(`[{"a":1},{"b":2}]`))))
	// Empty arrays and non-array payloads pass through.
	assert.JSONEq(t, `[]`, string(unwrapSingle([]byte(`[]`))))
	assert.JSONEq(t, `{"a":1}`, string(unwrapSingle([]byte(`{"a":1}`))))
}

func TestSearchCompanies_DefaultLimit(t *testing.T) {
	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	})
	tool, err := NewSearchCompanies(c)
	require.NoError(t, err)

	_, err = tool.Execute(context.Background(), []byte(`{"query": "apple"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple"}, gotQuery["query"])
	assert.Equal(t, []string{"10"}, gotQuery["limit"])
	assert.Empty(t, gotQuery["exchange"])

	_, err = tool.Execute(context.Background(), []byte(`{"query": "apple", "limit": 3, "exchange": "NASDAQ"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, gotQuery["limit"])
	assert.Equal(t, []string{"NASDAQ"}, gotQuery["exchange"])
}

func TestCompanyInfoExtended_EndpointMapping(t *testing.T) {
	var gotPath string
	var gotSymbol string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSymbol = r.URL.Query().Get("symbol")
		w.Write([]byte(`[]`))
	})
	tool, err := NewCompanyInfoExtended(c)
	require.NoError(t, err)

	_, err = tool.Execute(context.Background(), []byte(`{"info_type": "stock_peers", "params": {"symbol": "AAPL"}}`))
	require.NoError(t, err)
	assert.Equal(t, "/stable/stock-peers", gotPath)
	assert.Equal(t, "AAPL", gotSymbol)
}

func TestCompanyInfoEndpoints_CoverEnum(t *testing.T) {
	// Every enum value must map to an endpoint; a miss would build an empty path.
	for _, v := range []string{
		"profile_cik", "company_notes", "stock_peers", "delisted_companies",
		"employee_count", "historical_employee_count", "market_capitalization",
		"market_capitalization_batch", "historical_market_capitalization",
		"shares_float", "shares_float_all",
	} {
		assert.NotEmpty(t, companyInfoEndpoints[v], "no endpoint for %q", v)
	}
}
