package model

// Package model defines the domain data structures shared across the app:
// search results, result sets, and the lookup state machine. Structures are
// plain values designed for direct binding in the UI.
