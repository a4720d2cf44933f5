package wiki

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redirectBody(redirects map[string]string) string {
	var entries []string
	for from, to := range redirects {
		entries = append(entries, fmt.Sprintf(`{"from":%q,"to":%q}`, from, to))
	}
	return fmt.Sprintf(`{"query":{"redirects":[%s],"pages":{}}}`, strings.Join(entries, ","))
}

func TestResolveRedirects_ChasesChains(t *testing.T) {
	client := newTestClient(t, jsonHandler(redirectBody(map[string]string{
		"A": "B",
		"B": "C",
	})))

	resolved, err := client.ResolveRedirects(context.Background(), []string{"A", "B", "C"}, "en", 1)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"A": "C",
		"B": "C",
		"C": "",
	}, resolved)
}

func TestResolveRedirects_AppliesNormalization(t *testing.T) {
	client := newTestClient(t, jsonHandler(`{"query":{
		"normalized": [{"from": "golang", "to": "Golang"}],
		"redirects": [{"from": "Golang", "to": "Go (programming language)"}],
		"pages": {}
	}}`))

	resolved, err := client.ResolveRedirects(context.Background(), []string{"golang"}, "en", 1)
	require.NoError(t, err)
	assert.Equal(t, "Go (programming language)", resolved["golang"])
}

func TestResolveRedirects_ChunksAtFifty(t *testing.T) {
	var requests atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		titles := strings.Split(r.URL.Query().Get("titles"), "|")
		assert.LessOrEqual(t, len(titles), redirectBatchSize)
		_, _ = w.Write([]byte(`{"query":{"redirects":[],"pages":{}}}`))
	}))

	titles := make([]string, 120)
	for i := range titles {
		titles[i] = fmt.Sprintf("Page %d", i)
	}

	resolved, err := client.ResolveRedirects(context.Background(), titles, "en", 4)
	require.NoError(t, err)
	assert.Equal(t, int32(3), requests.Load())
	assert.Len(t, resolved, 120, "every requested title appears exactly once")
	for _, title := range titles {
		target, ok := resolved[title]
		require.True(t, ok)
		assert.Empty(t, target)
	}
}

func TestResolveRedirects_EmptyInput(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty input")
	}))

	resolved, err := client.ResolveRedirects(context.Background(), nil, "en", 4)
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestResolveRedirects_CyclicTable(t *testing.T) {
	client := newTestClient(t, jsonHandler(redirectBody(map[string]string{
		"A": "B",
		"B": "A",
	})))

	_, err := client.ResolveRedirects(context.Background(), []string{"A"}, "en", 1)

	var chain *RedirectChainError
	require.ErrorAs(t, err, &chain)
	assert.Equal(t, "A", chain.Title)
}

func TestResolveRedirect_Single(t *testing.T) {
	client := newTestClient(t, jsonHandler(redirectBody(map[string]string{
		"Golang": "Go (programming language)",
	})))

	target, err := client.ResolveRedirect(context.Background(), "Golang", "en")
	require.NoError(t, err)
	assert.Equal(t, "Go (programming language)", target)

	target, err = client.ResolveRedirect(context.Background(), "Go (programming language)", "en")
	require.NoError(t, err)
	assert.Empty(t, target, "non-redirects resolve to the empty string")
}

func TestRedirectsTo(t *testing.T) {
	responses := map[string]string{
		"": `{
			"continue": {"rdcontinue": "9|0"},
			"query": {"pages": {"1": {"pageid": 1, "title": "Go (programming language)", "redirects": [
				{"pageid": 5, "ns": 0, "title": "Golang"}
			]}}}
		}`,
		"9|0": `{
			"query": {"pages": {"1": {"pageid": 1, "title": "Go (programming language)", "redirects": [
				{"pageid": 6, "ns": 0, "title": "Go language"}
			]}}}
		}`,
	}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(responses[r.URL.Query().Get("rdcontinue")]))
	}))

	titles, err := client.RedirectsTo(context.Background(), "Go (programming language)", "en")
	require.NoError(t, err)
	assert.Equal(t, []string{"Golang", "Go language"}, titles)
}

func TestChunkTitles(t *testing.T) {
	chunks := chunkTitles([]string{"a", "b", "c", "d", "e"}, 2)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, chunks)
	assert.Nil(t, chunkTitles(nil, 2))
}
