package wiki

import (
	"bytes"
	"encoding/json"
)

// apiResponse is the MediaWiki action API envelope. Only the fields the
// harvester reads are modeled.
type apiResponse struct {
	Error    *apiErrorBody `json:"error"`
	Continue continueBlock `json:"continue"`
	Query    *queryResult  `json:"query"`
}

type apiErrorBody struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// continueBlock holds the continuation cursor for paginated endpoints.
// The API usually sends string tokens but emits bare numbers for some
// list modules, so decoding coerces every value to a string.
type continueBlock map[string]string

func (c *continueBlock) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			out[key] = s
			continue
		}
		out[key] = string(bytes.Trim(value, `"`))
	}
	*c = out
	return nil
}

type queryResult struct {
	Pages           map[string]pageResult `json:"pages"`
	CategoryMembers []pageRef             `json:"categorymembers"`
	Redirects       []titleMapping        `json:"redirects"`
	Normalized      []titleMapping        `json:"normalized"`
}

type pageResult struct {
	PageID  int64  `json:"pageid"`
	NS      int    `json:"ns"`
	Title   string `json:"title"`
	Extract string `json:"extract"`
	Length  int    `json:"length"`

	// Missing is present (as an empty string) when the page does not
	// exist. RawMessage tolerates the boolean form newer API versions
	// emit.
	Missing json.RawMessage `json:"missing"`

	Categories []pageRef `json:"categories"`
	Links      []pageRef `json:"links"`
	LinksHere  []pageRef `json:"linkshere"`
	Redirects  []pageRef `json:"redirects"`
	Templates  []pageRef `json:"templates"`
}

func (p *pageResult) missing() bool {
	return len(p.Missing) > 0
}

type pageRef struct {
	PageID int64  `json:"pageid"`
	NS     int    `json:"ns"`
	Title  string `json:"title"`
}

type titleMapping struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// solePage returns the single page of a titles=<one> response. Responses
// for single-title requests carry exactly one entry keyed by page ID.
func (q *queryResult) solePage() (*pageResult, bool) {
	if q == nil {
		return nil, false
	}
	for id := range q.Pages {
		p := q.Pages[id]
		return &p, true
	}
	return nil, false
}

// soleMissing reports whether the response marks its sole page missing.
func (r *apiResponse) soleMissing() bool {
	p, ok := r.Query.solePage()
	return ok && p.missing()
}

// continueToken returns the continuation token for the given cursor key.
func (r *apiResponse) continueToken(key string) (string, bool) {
	token, ok := r.Continue[key]
	return token, ok
}
