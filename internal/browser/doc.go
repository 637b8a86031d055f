package browser

// Package browser renders web pages for the browser pane. Fyne has no
// embedded web engine, so pages are rendered by headless Chrome through
// chromedp and shown as screenshots.
