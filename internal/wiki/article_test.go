package wiki

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func articleBody(pageID int, title, extract string, length int) string {
	return fmt.Sprintf(`{"query":{"pages":{"%d":{"pageid":%d,"ns":0,"title":%q,"extract":%q,"length":%d}}}}`,
		pageID, pageID, title, extract, length)
}

func TestArticle_Fetch(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "extracts|info", r.URL.Query().Get("prop"))
		assert.Equal(t, "1", r.URL.Query().Get("explaintext"))
		assert.Equal(t, "Go (programming language)", r.URL.Query().Get("titles"))
		_, _ = w.Write([]byte(articleBody(25039021, "Go (programming language)", "Go is a programming language.", 120)))
	}))

	article, err := client.Article(context.Background(), "Go (programming language)", "en")
	require.NoError(t, err)
	assert.Equal(t, "Go (programming language)", article.Title)
	assert.Equal(t, "Go is a programming language.", article.Text)
	assert.Equal(t, int64(25039021), article.PageID)
	assert.Equal(t, "en", article.Lang)
	assert.Equal(t, 120, article.WikitextLength)
	assert.False(t, article.PossiblyTruncated)
}

func TestArticle_NotFound(t *testing.T) {
	client := newTestClient(t, jsonHandler(`{"query":{"pages":{"-1":{"title":"No such page","missing":""}}}}`))

	_, err := client.Article(context.Background(), "No such page", "en")

	var notFound *PageNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "No such page", notFound.Title)
}

func TestArticles_IsolatesMissing(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		title := r.URL.Query().Get("titles")
		if strings.HasPrefix(title, "Ghost") {
			_, _ = fmt.Fprintf(w, `{"query":{"pages":{"-1":{"title":%q,"missing":""}}}}`, title)
			return
		}
		_, _ = w.Write([]byte(articleBody(1, title, "text of "+title, 40)))
	}))

	batch, err := client.Articles(context.Background(),
		[]string{"Alpha", "Ghost one", "Beta", "Ghost two"}, "en", 2)
	require.NoError(t, err)

	var got []string
	for _, article := range batch.Articles {
		got = append(got, article.Title)
	}
	sort.Strings(got)
	assert.Equal(t, []string{"Alpha", "Beta"}, got)

	sort.Strings(batch.Missing)
	assert.Equal(t, []string{"Ghost one", "Ghost two"}, batch.Missing)
}

func TestArticles_EmptyInputMakesNoRequests(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty batch")
	}))

	batch, err := client.Articles(context.Background(), nil, "en", 4)
	require.NoError(t, err)
	assert.Empty(t, batch.Articles)
	assert.Empty(t, batch.Missing)
}

func TestArticles_PropagatesHardFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("titles") == "Broken" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(articleBody(1, "ok", "fine", 10)))
	}))

	_, err := client.Articles(context.Background(), []string{"A", "Broken", "B"}, "en", 1)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.StatusCode)
}

func TestPossiblyTruncated(t *testing.T) {
	assert.True(t, possiblyTruncated("cut off here...", 30))
	assert.True(t, possiblyTruncated("cut off here…", 26))
	assert.True(t, possiblyTruncated("tiny", 1000), "extract far smaller than wikitext")
	assert.False(t, possiblyTruncated("a complete short article.", 40))
	assert.False(t, possiblyTruncated("", 0))
}
