// Package wiki is a client for the MediaWiki action API tuned for corpus
// harvesting from Wikipedia. All operations share a single rate-limited,
// retrying transport; batch operations fan out with bounded concurrency
// and isolate missing pages instead of failing the whole batch.
package wiki

// Namespace identifies a MediaWiki content namespace.
type Namespace int

// The namespaces the harvester operates on.
const (
	NamespaceMain     Namespace = 0
	NamespaceTemplate Namespace = 10
	NamespaceCategory Namespace = 14
)

// LinkDirection selects which side of the link graph to walk.
type LinkDirection string

const (
	// LinkOutgoing lists pages the subject links to.
	LinkOutgoing LinkDirection = "outgoing"
	// LinkIncoming lists pages that link to the subject.
	LinkIncoming LinkDirection = "incoming"
)

// Article is a fetched Wikipedia article with its plain-text extract.
type Article struct {
	Title  string
	Text   string
	PageID int64
	Lang   string

	// WikitextLength is the byte length of the page's raw wikitext as
	// reported by the API, not the length of Text.
	WikitextLength int

	// PossiblyTruncated signals that the extract looks cut short. It is
	// a heuristic and advisory only.
	PossiblyTruncated bool
}

// ArticleBatch is the outcome of a concurrent multi-article fetch.
// Missing holds the requested titles that do not exist; order follows
// completion and is not significant.
type ArticleBatch struct {
	Articles []Article
	Missing  []string
}

// CategoryMember is one member of a category listing.
type CategoryMember struct {
	PageID int64
	NS     Namespace
	Title  string
}

// Link is one edge of the link graph around a page.
type Link struct {
	PageID int64
	NS     Namespace
	Title  string
}
