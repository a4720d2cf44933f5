package wiki

import (
	"context"
)

// CategoryMembers lists every member of a category in the given
// namespace, following continuation until exhausted. The category title
// may be given with or without the "Category:" prefix. Only the main
// and category namespaces are listable; anything else is a
// ValidationError raised before any network call.
func (c *Client) CategoryMembers(ctx context.Context, category, lang string, ns Namespace) ([]CategoryMember, error) {
	cmType, err := categoryMemberType(ns)
	if err != nil {
		return nil, err
	}

	params := categoryMembersParams(category, cmType, ns)
	return collectAll(ctx, c, lang, params, "cmcontinue",
		getOptions{operation: "category_members"},
		func(resp *apiResponse) []CategoryMember {
			if resp.Query == nil {
				return nil
			}
			members := make([]CategoryMember, 0, len(resp.Query.CategoryMembers))
			for _, ref := range resp.Query.CategoryMembers {
				members = append(members, CategoryMember{
					PageID: ref.PageID,
					NS:     Namespace(ref.NS),
					Title:  ref.Title,
				})
			}
			return members
		})
}

// PageCategories lists the categories a page belongs to. Hidden
// maintenance categories are excluded unless includeHidden is set.
func (c *Client) PageCategories(ctx context.Context, page, lang string, includeHidden bool) ([]string, error) {
	params := pageCategoriesParams(page, includeHidden)
	return collectAll(ctx, c, lang, params, "clcontinue",
		getOptions{operation: "page_categories"},
		func(resp *apiResponse) []string {
			var titles []string
			if resp.Query == nil {
				return nil
			}
			for _, page := range resp.Query.Pages {
				for _, ref := range page.Categories {
					titles = append(titles, ref.Title)
				}
			}
			return titles
		})
}

func categoryMemberType(ns Namespace) (string, error) {
	switch ns {
	case NamespaceMain:
		return "page", nil
	case NamespaceCategory:
		return "subcat", nil
	default:
		return "", &ValidationError{
			Field:   "namespace",
			Message: "category members can only be listed for the main or category namespace",
		}
	}
}
