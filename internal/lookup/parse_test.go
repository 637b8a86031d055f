package lookup

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResults_Shapes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr string
	}{
		{name: "empty options", body: `{"arrOptions": []}`, want: 0},
		{name: "extra fields ignored", body: `{"arrOptions": [{"i": 1, "r": ["a", 1, 0], "x": true}], "lastPage": 1}`, want: 1},
		{name: "short row tail", body: `{"arrOptions": [{"i": 1, "r": ["a"]}]}`, want: 1},
		{name: "invalid json", body: `{"arrOptions": [`, wantErr: "not valid JSON"},
		{name: "top-level array", body: `[]`, wantErr: "not a JSON object"},
		{name: "missing options", body: `{"query": "a"}`, wantErr: "missing arrOptions"},
		{name: "options not array", body: `{"arrOptions": {}}`, wantErr: "arrOptions is not an array"},
		{name: "id not number", body: `{"arrOptions": [{"i": "1", "r": ["a", 1, 0]}]}`, wantErr: "entry 0: i is not a number"},
		{name: "row missing", body: `{"arrOptions": [{"i": 1}]}`, wantErr: "entry 0: r is not an array"},
		{name: "row empty", body: `{"arrOptions": [{"i": 1, "r": []}]}`, wantErr: "r[0] is not a string"},
		{name: "text not string", body: `{"arrOptions": [{"i": 1, "r": ["a", 1, 0]}, {"i": 2, "r": [2, 1, 0]}]}`, wantErr: "entry 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := ParseResults([]byte(tt.body))
			if tt.wantErr != "" {
				var decodeErr *DecodeError
				require.True(t, errors.As(err, &decodeErr), "expected DecodeError, got %v", err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, results)
				return
			}
			require.NoError(t, err)
			assert.Len(t, results, tt.want)
		})
	}
}

func TestBuildURL(t *testing.T) {
	raw, err := BuildURL("https://philolog.us/query?keep=1", "lsj", `"λόγος" x`)
	require.NoError(t, err)

	assert.False(t, strings.ContainsAny(raw, ` "`), "URL must not contain raw spaces or quotes: %s", raw)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "philolog.us", u.Host)
	assert.Equal(t, "/query", u.Path)

	values := u.Query()
	assert.Equal(t, "1", values.Get("keep"))
	assert.Equal(t, RequestTime, values.Get(ParamRequestTime))
	assert.Equal(t, XValue, values.Get(ParamX))
	assert.JSONEq(t,
		`{"regex":"0","lexicon":"lsj","tag_id":"0","root_id":"0","w":"\"λόγος\" x"}`,
		values.Get(ParamQuery))
}

func TestBuildURL_InvalidEndpoint(t *testing.T) {
	_, err := BuildURL("://bad", "lsj", "a")
	assert.Error(t, err)

	_, err = BuildURL("philolog.us/query", "lsj", "a")
	assert.Error(t, err)
}
