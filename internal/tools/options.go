package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"fmpmcp"
	"fmpmcp/internal/fmp"
)

type optionExpirationsArgs struct {
	Symbol string `json:"symbol" description:"Ticker symbol, e.g. AAPL"`
}

// NewOptionExpirations returns the get_option_expiration_dates tool. The
// expirations come back sorted so callers can pick the nearest date reliably.
func NewOptionExpirations(c *fmp.Client) (fmpmcp.Tool, error) {
	return fmpmcp.NewTool(
		"get_option_expiration_dates",
		"List the available option expiration dates for a ticker, sorted ascending.",
		func(ctx context.Context, args optionExpirationsArgs) ([]string, error) {
			payload, err := c.Get(ctx, "api/v3/options/available-expirations/"+args.Symbol, nil)
			if err != nil {
				return nil, err
			}
			dates, err := decodeExpirations(payload)
			if err != nil {
				return nil, err
			}
			slices.Sort(dates)
			return dates, nil
		},
	)
}

// decodeExpirations accepts both payload shapes the provider uses: a bare
// array of dates, or an object with an "expirations" array.
func decodeExpirations(payload json.RawMessage) ([]string, error) {
	var dates []string
	if err := json.Unmarshal(payload, &dates); err == nil {
		return dates, nil
	}
	var envelope struct {
		Expirations []string `json:"expirations"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("unexpected expirations payload: %w", err)
	}
	return envelope.Expirations, nil
}

type optionChainArgs struct {
	Symbol     string `json:"symbol" description:"Ticker symbol, e.g. AAPL"`
	Expiration string `json:"expiration_date" description:"Option expiration date, YYYY-MM-DD"`
	Side       string `json:"side" enum:"call,put" description:"Which side of the chain to return"`
}

// Validate checks the expiration date layout before any network call.
func (a optionChainArgs) Validate() error {
	if _, err := time.Parse("2006-01-02", a.Expiration); err != nil {
		return fmt.Errorf("expiration_date must be YYYY-MM-DD, got %q", a.Expiration)
	}
	return nil
}

// NewOptionChain returns the get_option_chain tool. The upstream chain mixes
// calls and puts; only entries matching the requested side and expiration are
// returned.
func NewOptionChain(c *fmp.Client) (fmpmcp.Tool, error) {
	return fmpmcp.NewTool(
		"get_option_chain",
		"Get the option chain for a ticker and expiration date, filtered to calls or puts.",
		func(ctx context.Context, args optionChainArgs) (json.RawMessage, error) {
			params := url.Values{}
			params.Set("expiration", args.Expiration)
			payload, err := c.Get(ctx, "api/v3/options/chain/"+args.Symbol, params)
			if err != nil {
				return nil, err
			}
			return filterChainSide(payload, args.Expiration, args.Side)
		},
	)
}

// filterChainSide keeps entries whose optionType matches side and whose
// expirationDate matches expiration.
func filterChainSide(payload json.RawMessage, expiration, side string) (json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("unexpected option chain payload: %w", err)
	}
	kept := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		var entry struct {
			ExpirationDate string `json:"expirationDate"`
			OptionType     string `json:"optionType"`
		}
		if err := json.Unmarshal(item, &entry); err != nil {
			continue
		}
		if entry.ExpirationDate == expiration && strings.EqualFold(entry.OptionType, side) {
			kept = append(kept, item)
		}
	}
	return json.Marshal(kept)
}
