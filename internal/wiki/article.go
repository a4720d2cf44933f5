package wiki

import (
	"context"
	"strings"

	"wikicorpus/internal/observability/metrics"
)

// Article fetches one article's plain-text extract along with its page
// metadata. Returns PageNotFoundError when the page does not exist.
func (c *Client) Article(ctx context.Context, title, lang string) (Article, error) {
	resp, err := c.get(ctx, lang, articleParams(title), getOptions{
		operation:    "article",
		checkMissing: true,
		title:        title,
	})
	if err != nil {
		return Article{}, err
	}
	return parseArticle(resp, title, lang), nil
}

// Articles fetches many articles concurrently, at most maxConcurrency
// requests in flight. Titles that do not exist land in the batch's
// Missing list; any other failure cancels the batch and is returned.
func (c *Client) Articles(ctx context.Context, titles []string, lang string, maxConcurrency int) (ArticleBatch, error) {
	articles, missing, err := forEachBounded(ctx, titles, maxConcurrency,
		func(ctx context.Context, title string) (Article, error) {
			article, err := c.Article(ctx, title, lang)
			if err == nil {
				metrics.RecordPageHarvested()
			}
			return article, err
		})
	if err != nil {
		return ArticleBatch{}, err
	}
	return ArticleBatch{Articles: articles, Missing: missing}, nil
}

func parseArticle(resp *apiResponse, title, lang string) Article {
	page, ok := resp.Query.solePage()
	if !ok {
		return Article{Title: title, PageID: -1, Lang: lang}
	}

	resolved := page.Title
	if resolved == "" {
		resolved = title
	}
	return Article{
		Title:             resolved,
		Text:              page.Extract,
		PageID:            page.PageID,
		Lang:              lang,
		WikitextLength:    page.Length,
		PossiblyTruncated: possiblyTruncated(page.Extract, page.Length),
	}
}

// possiblyTruncated guesses whether an extract was cut short by the
// API: either it ends in an ellipsis or it is suspiciously small next
// to the page's wikitext length.
func possiblyTruncated(text string, wikitextLength int) bool {
	trimmed := strings.TrimRight(text, " \n")
	if strings.HasSuffix(trimmed, "...") || strings.HasSuffix(trimmed, "…") {
		return true
	}
	return wikitextLength > 0 && len(text) < wikitextLength/2
}
