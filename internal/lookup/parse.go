package lookup

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/philologus/philologus-desktop/internal/model"
)

// Response field paths. Everything else in the body is ignored.
const (
	fieldOptions = "arrOptions"
	fieldID      = "i"
	fieldRow     = "r"
)

// ParseResults decodes a lookup response body into a ResultSet.
// Each arrOptions entry {i, r:[text, ...]} maps to SearchResult{ID: i, Text: r[0]}.
func ParseResults(body []byte) (model.ResultSet, error) {
	if !gjson.ValidBytes(body) {
		return nil, &DecodeError{Reason: "body is not valid JSON"}
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, &DecodeError{Reason: "body is not a JSON object"}
	}

	options := root.Get(fieldOptions)
	if !options.Exists() {
		return nil, &DecodeError{Reason: "missing " + fieldOptions}
	}
	if !options.IsArray() {
		return nil, &DecodeError{Reason: fieldOptions + " is not an array"}
	}

	entries := options.Array()
	results := make(model.ResultSet, 0, len(entries))
	for idx, entry := range entries {
		id := entry.Get(fieldID)
		if id.Type != gjson.Number {
			return nil, &DecodeError{Reason: fmt.Sprintf("entry %d: %s is not a number", idx, fieldID)}
		}

		row := entry.Get(fieldRow)
		if !row.IsArray() {
			return nil, &DecodeError{Reason: fmt.Sprintf("entry %d: %s is not an array", idx, fieldRow)}
		}
		cols := row.Array()
		if len(cols) == 0 || cols[0].Type != gjson.String {
			return nil, &DecodeError{Reason: fmt.Sprintf("entry %d: %s[0] is not a string", idx, fieldRow)}
		}

		results = append(results, model.SearchResult{
			ID:   int(id.Int()),
			Text: cols[0].String(),
		})
	}

	return results, nil
}
