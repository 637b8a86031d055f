// Package ui contains the Fyne desktop shell: a search sidebar whose result list
// is backed by the lookup service, split next to a browser pane showing the
// dictionary site. All UI strings are localized via Localization.
package ui
