package search

// Package search implements the search entry controller. It turns entry
// change events into background lookups and commits only the newest
// lookup's results to the result list, on the UI thread.
