package wiki

import (
	"context"
	"net/url"
)

// collectAll walks a continuation chain until the API stops returning a
// cursor, feeding every response through parse and concatenating the
// results in arrival order.
func collectAll[T any](ctx context.Context, c *Client, lang string, params url.Values, continueKey string, opt getOptions, parse func(*apiResponse) []T) ([]T, error) {
	var items []T
	for {
		resp, err := c.get(ctx, lang, params, opt)
		if err != nil {
			return nil, err
		}
		items = append(items, parse(resp)...)

		token, ok := resp.continueToken(continueKey)
		if !ok {
			return items, nil
		}
		params.Set(continueKey, token)
	}
}
