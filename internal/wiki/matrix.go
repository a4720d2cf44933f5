package wiki

import (
	"context"
	"log/slog"
	"sort"

	"wikicorpus/internal/corpus"
)

// CategoryMemberMatrix builds a membership matrix for a set of
// categories: one row per category, one column per member title seen
// anywhere. depth > 1 expands subcategories breadth-first and requires
// the category namespace. Category titles in labels are stored without
// the "Category:" prefix.
func (c *Client) CategoryMemberMatrix(ctx context.Context, categories []string, depth int, lang string, ns Namespace, maxConcurrency int) (*corpus.LabeledMatrix, error) {
	if depth < 1 {
		return nil, &ValidationError{Field: "depth", Message: "depth must be at least 1"}
	}
	if depth > 1 && ns != NamespaceCategory {
		return nil, &ValidationError{
			Field:   "depth",
			Message: "depth beyond 1 only makes sense when expanding subcategories",
		}
	}
	if depth > 3 {
		c.logger.Warn("deep category expansion requested",
			slog.Int("depth", depth),
			slog.Int("categories", len(categories)))
	}

	var (
		relations []corpus.Relation
		haveRow   = map[string]bool{}
		frontier  = categories
	)

	for level := 1; level <= depth; level++ {
		var toFetch []string
		for _, category := range frontier {
			label := StripCategoryPrefix(category)
			if !haveRow[label] {
				haveRow[label] = true
				toFetch = append(toFetch, category)
			}
		}
		if len(toFetch) == 0 {
			break
		}

		fetched, err := mapBounded(ctx, toFetch, maxConcurrency,
			func(ctx context.Context, category string) (corpus.Relation, error) {
				members, err := c.CategoryMembers(ctx, category, lang, ns)
				if err != nil {
					return corpus.Relation{}, err
				}
				targets := make([]string, len(members))
				for i, member := range members {
					targets[i] = StripCategoryPrefix(member.Title)
				}
				return corpus.Relation{
					Label:   StripCategoryPrefix(category),
					Targets: targets,
				}, nil
			})
		if err != nil {
			return nil, err
		}
		relations = append(relations, fetched...)

		if level == depth {
			break
		}
		next := map[string]bool{}
		for _, relation := range fetched {
			for _, target := range relation.Targets {
				if !haveRow[target] {
					next[target] = true
				}
			}
		}
		frontier = make([]string, 0, len(next))
		for target := range next {
			frontier = append(frontier, target)
		}
		sort.Strings(frontier)
	}

	return corpus.BuildMatrix(relations), nil
}
