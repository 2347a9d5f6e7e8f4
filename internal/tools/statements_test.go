package tools

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fmpmcp"
)

func TestFinancialStatement_EndpointAndPeriod(t *testing.T) {
	var gotPath, gotPeriod string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPeriod = r.URL.Query().Get("period")
		w.Write([]byte(`[]`))
	})
	tool, err := NewFinancialStatement(c)
	require.NoError(t, err)

	cases := []struct {
		args     string
		wantPath string
		wantPer  string
	}{
		{`{"symbol": "AAPL", "statement": "income"}`, "/api/v3/income-statement/AAPL", "annual"},
		{`{"symbol": "MSFT", "statement": "balance", "period": "quarter"}`, "/api/v3/balance-sheet-statement/MSFT", "quarter"},
		{`{"symbol": "TSLA", "statement": "cashflow", "period": "annual"}`, "/api/v3/cash-flow-statement/TSLA", "annual"},
	}
	for _, tc := range cases {
		_, err := tool.Execute(context.Background(), []byte(tc.args))
		require.NoError(t, err, tc.args)
		assert.Equal(t, tc.wantPath, gotPath)
		assert.Equal(t, tc.wantPer, gotPeriod)
	}
}

func TestFinancialStatement_BadStatementRejected(t *testing.T) {
	c := newTestClient(t, emptyArray)
	tool, err := NewFinancialStatement(c)
	require.NoError(t, err)

	_, err = tool.Execute(context.Background(), []byte(`{"symbol": "AAPL", "statement": "proxy"}`))
	require.Error(t, err)
	assert.True(t, fmpmcp.IsClientError(err))
}
