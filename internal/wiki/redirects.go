package wiki

import (
	"context"
	"sync"

	"wikicorpus/internal/observability/metrics"
)

const (
	// redirectBatchSize is the API's cap on titles per query.
	redirectBatchSize = 50

	// maxRedirectHops bounds chain chasing. Real redirect tables are one
	// or two hops deep; a longer chain means a cycle.
	maxRedirectHops = 20
)

// ResolveRedirect resolves a single title. The returned destination is
// empty when the title is not a redirect. Chains are followed to their
// final target.
func (c *Client) ResolveRedirect(ctx context.Context, title, lang string) (string, error) {
	resolved, err := c.ResolveRedirects(ctx, []string{title}, lang, 1)
	if err != nil {
		return "", err
	}
	return resolved[title], nil
}

// ResolveRedirects resolves every title to its final redirect target in
// batches of 50, fetched concurrently with at most maxConcurrency
// requests in flight. Every requested title appears in the result
// exactly once; non-redirects map to the empty string. Chains are
// chased through the combined redirect table ({A→B, B→C} yields A→C).
func (c *Client) ResolveRedirects(ctx context.Context, titles []string, lang string, maxConcurrency int) (map[string]string, error) {
	if len(titles) == 0 {
		return map[string]string{}, nil
	}

	var (
		mu          sync.Mutex
		redirectMap = map[string]string{}
		normalized  = map[string]string{}
	)

	_, err := mapBounded(ctx, chunkTitles(titles, redirectBatchSize), maxConcurrency,
		func(ctx context.Context, chunk []string) (struct{}, error) {
			resp, err := c.get(ctx, lang, redirectParams(chunk), getOptions{operation: "redirects"})
			if err != nil {
				return struct{}{}, err
			}
			mu.Lock()
			defer mu.Unlock()
			if resp.Query != nil {
				for _, m := range resp.Query.Redirects {
					redirectMap[m.From] = m.To
				}
				for _, m := range resp.Query.Normalized {
					normalized[m.From] = m.To
				}
			}
			return struct{}{}, nil
		})
	if err != nil {
		return nil, err
	}

	resolved := make(map[string]string, len(titles))
	for _, title := range titles {
		canonical := title
		if norm, ok := normalized[title]; ok {
			canonical = norm
		}
		target, ok := redirectMap[canonical]
		if !ok {
			resolved[title] = ""
			continue
		}
		hops := 1
		for {
			next, ok := redirectMap[target]
			if !ok {
				break
			}
			target = next
			hops++
			if hops > maxRedirectHops {
				return nil, &RedirectChainError{Title: title, Hops: hops}
			}
		}
		resolved[title] = target
	}

	metrics.RecordRedirectsResolved(len(titles))
	return resolved, nil
}

// RedirectsTo lists every redirect pointing at the given page.
func (c *Client) RedirectsTo(ctx context.Context, page, lang string) ([]string, error) {
	params := redirectsToParams(page)
	return collectAll(ctx, c, lang, params, "rdcontinue",
		getOptions{operation: "redirects_to"},
		func(resp *apiResponse) []string {
			var titles []string
			if resp.Query == nil {
				return nil
			}
			for _, page := range resp.Query.Pages {
				for _, ref := range page.Redirects {
					titles = append(titles, ref.Title)
				}
			}
			return titles
		})
}

func chunkTitles(titles []string, size int) [][]string {
	var chunks [][]string
	for start := 0; start < len(titles); start += size {
		end := start + size
		if end > len(titles) {
			end = len(titles)
		}
		chunks = append(chunks, titles[start:end])
	}
	return chunks
}
