package wiki

import (
	"context"
)

// Links walks the link graph around a page. LinkOutgoing lists pages
// the subject links to, LinkIncoming lists pages linking to it. The
// namespace filter defaults to the main namespace when empty.
func (c *Client) Links(ctx context.Context, page string, direction LinkDirection, lang string, namespaces []Namespace) ([]Link, error) {
	var (
		params      = outgoingLinksParams(page, namespaces)
		continueKey = "plcontinue"
		pick        = func(p *pageResult) []pageRef { return p.Links }
	)
	switch direction {
	case LinkOutgoing:
	case LinkIncoming:
		params = incomingLinksParams(page, namespaces)
		continueKey = "lhcontinue"
		pick = func(p *pageResult) []pageRef { return p.LinksHere }
	default:
		return nil, &ValidationError{
			Field:   "direction",
			Message: "link direction must be incoming or outgoing",
		}
	}

	return collectAll(ctx, c, lang, params, continueKey,
		getOptions{operation: "links"},
		func(resp *apiResponse) []Link {
			var links []Link
			if resp.Query == nil {
				return nil
			}
			for _, page := range resp.Query.Pages {
				for _, ref := range pick(&page) {
					links = append(links, Link{
						PageID: ref.PageID,
						NS:     Namespace(ref.NS),
						Title:  ref.Title,
					})
				}
			}
			return links
		})
}

// LinkTitles is Links reduced to the page titles.
func (c *Client) LinkTitles(ctx context.Context, page string, direction LinkDirection, lang string, namespaces []Namespace) ([]string, error) {
	links, err := c.Links(ctx, page, direction, lang, namespaces)
	if err != nil {
		return nil, err
	}
	titles := make([]string, len(links))
	for i, link := range links {
		titles[i] = link.Title
	}
	return titles, nil
}
