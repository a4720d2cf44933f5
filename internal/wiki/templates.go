package wiki

import (
	"context"
)

// Templates lists the templates transcluded by a page, restricted to the
// template namespace.
func (c *Client) Templates(ctx context.Context, page, lang string) ([]string, error) {
	params := templatesParams(page)
	return collectAll(ctx, c, lang, params, "tlcontinue",
		getOptions{operation: "templates"},
		func(resp *apiResponse) []string {
			var titles []string
			if resp.Query == nil {
				return nil
			}
			for _, page := range resp.Query.Pages {
				for _, ref := range page.Templates {
					titles = append(titles, ref.Title)
				}
			}
			return titles
		})
}
