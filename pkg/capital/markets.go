package capital

import (
	"context"

	"github.com/pkg/errors"
)

// SearchMarkets looks up instruments matching term. The API reports results
// under either a "markets" or a "content" key depending on the route; an
// empty slice is returned when neither is present.
func (c *Client) SearchMarkets(ctx context.Context, term string) ([]map[string]any, error) {
	log := c.opLog("search_markets").WithField("term", term)

	resp, err := c.newRequest(ctx).
		SetQueryParam("searchTerm", term).
		Get(EndpointMarkets)
	if err != nil {
		return nil, errors.Wrap(err, "search markets")
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: decodeDocument(resp.Body())}
	}

	doc := decodeDocument(resp.Body())
	for _, key := range []string{"markets", "content"} {
		raw, ok := doc.Fields[key].([]any)
		if !ok {
			continue
		}
		markets := make([]map[string]any, 0, len(raw))
		for _, entry := range raw {
			if m, ok := entry.(map[string]any); ok {
				markets = append(markets, m)
			}
		}
		log.WithField("count", len(markets)).Debug("markets found")
		return markets, nil
	}

	log.Debug("no markets in response")
	return []map[string]any{}, nil
}
