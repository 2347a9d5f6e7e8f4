package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"fmpmcp"
	"fmpmcp/internal/fmp"
)

type newsSentimentArgs struct {
	Symbol string `json:"symbol" description:"Ticker symbol, e.g. AAPL"`
}

// newsItem is the reshaped row returned to the caller; the provider's rows
// carry many more fields than anyone needs for a headline feed.
type newsItem struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
}

// NewNewsSentiment returns the get_news_sentiment tool.
func NewNewsSentiment(c *fmp.Client) (fmpmcp.Tool, error) {
	return fmpmcp.NewTool(
		"get_news_sentiment",
		"Get recent news articles for a ticker: title, summary, and link per article.",
		func(ctx context.Context, args newsSentimentArgs) ([]newsItem, error) {
			params := url.Values{}
			params.Set("tickers", args.Symbol)
			params.Set("page", "0")
			params.Set("size", "50")
			payload, err := c.Get(ctx, "api/v4/general_news", params)
			if err != nil {
				return nil, err
			}
			return reshapeNews(payload)
		},
	)
}

func reshapeNews(payload json.RawMessage) ([]newsItem, error) {
	var rows []struct {
		Title string `json:"title"`
		Text  string `json:"text"`
		URL   string `json:"url"`
	}
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, fmt.Errorf("unexpected news payload: %w", err)
	}
	out := make([]newsItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, newsItem{Title: row.Title, Summary: row.Text, URL: row.URL})
	}
	return out, nil
}

var cryptoNewsEndpoints = map[string]string{
	"latest": "news/crypto-latest",
	"search": "news/crypto",
}

// NewCryptoNews returns the crypto_news tool.
func NewCryptoNews(c *fmp.Client) (fmpmcp.Tool, error) {
	return newGroupedTool(c, "crypto_news",
		"Get cryptocurrency news: the latest headlines, or a search by symbol.",
		"news_type", "Latest headlines or a symbol search", cryptoNewsEndpoints)
}
