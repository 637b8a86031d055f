package lookup

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Fixed request parameters expected by the query endpoint
const (
	ParamPageSize    = "n"
	ParamIDPrefix    = "idprefix"
	ParamX           = "x"
	ParamRequestTime = "requestTime"
	ParamPage        = "page"
	ParamMode        = "mode"
	ParamQuery       = "query"

	PageSize    = 101
	IDPrefix    = "lemma"
	XValue      = "0.1"
	RequestTime = "1"
	FirstPage   = 0
	ModeContext = "context"
)

// queryParam is the JSON document carried in the query parameter
type queryParam struct {
	Regex   string `json:"regex"`
	Lexicon string `json:"lexicon"`
	TagID   string `json:"tag_id"`
	RootID  string `json:"root_id"`
	Word    string `json:"w"`
}

// BuildURL returns the full lookup URL for query against endpoint.
// The query is JSON-encoded into the query parameter, then URL-encoded.
func BuildURL(endpoint, lexicon, query string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid lookup endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid lookup endpoint %q: scheme must be http or https", endpoint)
	}

	encoded, err := json.Marshal(queryParam{
		Regex:   "0",
		Lexicon: lexicon,
		TagID:   "0",
		RootID:  "0",
		Word:    query,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode query: %w", err)
	}

	values := u.Query()
	values.Set(ParamPageSize, strconv.Itoa(PageSize))
	values.Set(ParamIDPrefix, IDPrefix)
	values.Set(ParamX, XValue)
	values.Set(ParamRequestTime, RequestTime)
	values.Set(ParamPage, strconv.Itoa(FirstPage))
	values.Set(ParamMode, ModeContext)
	values.Set(ParamQuery, string(encoded))
	u.RawQuery = values.Encode()

	return u.String(), nil
}
