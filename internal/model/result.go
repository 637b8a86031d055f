package model

import "strings"

// SearchResult is one entry of a lookup response: the lexicon word ID and its headword
type SearchResult struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// ResultSet is an ordered list of results from one completed lookup.
// Order is the server's response order.
type ResultSet []SearchResult

// Len returns the number of results
func (rs ResultSet) Len() int {
	return len(rs)
}

// Texts returns the display text of every result, in order
func (rs ResultSet) Texts() []string {
	texts := make([]string, 0, len(rs))
	for _, r := range rs {
		texts = append(texts, r.Text)
	}
	return texts
}

// DisplayText returns the headword with control characters folded to spaces
func (r SearchResult) DisplayText() string {
	text := strings.ReplaceAll(r.Text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	return strings.TrimSpace(text)
}

// QueryState holds the current raw text of the search entry. Last write wins.
type QueryState struct {
	Text string
}

// Set replaces the query text and reports whether it changed
func (q *QueryState) Set(text string) bool {
	if q.Text == text {
		return false
	}
	q.Text = text
	return true
}
