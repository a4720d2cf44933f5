package wiki

import (
	"net/url"
	"strconv"
	"strings"
)

const categoryPrefix = "Category:"

// NormalizeCategory ensures the title carries the "Category:" namespace
// prefix. Idempotent.
func NormalizeCategory(category string) string {
	if strings.HasPrefix(category, categoryPrefix) {
		return category
	}
	return categoryPrefix + category
}

// StripCategoryPrefix removes the "Category:" namespace prefix if
// present. Idempotent.
func StripCategoryPrefix(category string) string {
	return strings.TrimPrefix(category, categoryPrefix)
}

func baseParams() url.Values {
	return url.Values{
		"action": {"query"},
		"format": {"json"},
	}
}

func articleParams(title string) url.Values {
	v := baseParams()
	v.Set("prop", "extracts|info")
	v.Set("explaintext", "1")
	v.Set("titles", title)
	return v
}

func categoryMembersParams(category, cmType string, ns Namespace) url.Values {
	v := baseParams()
	v.Set("list", "categorymembers")
	v.Set("cmtitle", NormalizeCategory(category))
	v.Set("cmtype", cmType)
	v.Set("cmlimit", "max")
	v.Set("cmnamespace", ns.queryValue())
	return v
}

func pageCategoriesParams(page string, hidden bool) url.Values {
	v := baseParams()
	v.Set("prop", "categories")
	v.Set("titles", page)
	v.Set("cllimit", "max")
	if !hidden {
		v.Set("clshow", "!hidden")
	}
	return v
}

func outgoingLinksParams(page string, namespaces []Namespace) url.Values {
	v := baseParams()
	v.Set("prop", "links")
	v.Set("titles", page)
	v.Set("pllimit", "max")
	v.Set("plnamespace", namespaceList(namespaces))
	return v
}

func incomingLinksParams(page string, namespaces []Namespace) url.Values {
	v := baseParams()
	v.Set("prop", "linkshere")
	v.Set("titles", page)
	v.Set("lhprop", "pageid|title")
	v.Set("lhlimit", "max")
	v.Set("lhnamespace", namespaceList(namespaces))
	return v
}

func redirectParams(titles []string) url.Values {
	v := baseParams()
	v.Set("redirects", "1")
	v.Set("titles", strings.Join(titles, "|"))
	return v
}

func redirectsToParams(page string) url.Values {
	v := baseParams()
	v.Set("prop", "redirects")
	v.Set("titles", page)
	v.Set("rdlimit", "max")
	return v
}

func templatesParams(page string) url.Values {
	v := baseParams()
	v.Set("prop", "templates")
	v.Set("titles", page)
	v.Set("tlnamespace", NamespaceTemplate.queryValue())
	v.Set("tllimit", "max")
	return v
}

func (ns Namespace) queryValue() string {
	return strconv.Itoa(int(ns))
}

func namespaceList(namespaces []Namespace) string {
	if len(namespaces) == 0 {
		return NamespaceMain.queryValue()
	}
	parts := make([]string, len(namespaces))
	for i, ns := range namespaces {
		parts[i] = ns.queryValue()
	}
	return strings.Join(parts, "|")
}
