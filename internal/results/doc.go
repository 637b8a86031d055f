package results

// Package results holds the result list model backing the sidebar list view.
// The model keeps results in server order and projects them into a Fyne data
// binding that the view widget is bound to.
