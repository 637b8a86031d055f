package results

import (
	"fmt"
	"sort"
	"sync"

	"fyne.io/fyne/v2/data/binding"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/philologus/philologus-desktop/internal/model"
)

// List is an ordered, clearable collection of search results.
// Mutations are expected from the UI thread only; the mutex guards readers on other goroutines.
type List struct {
	mu         sync.Mutex
	items      []model.SearchResult
	sortByText bool
	collator   *collate.Collator

	view binding.UntypedList
}

// NewList creates an empty result list. Mutations notify the bound view
// through fyne.Do, so they require a running Fyne app.
func NewList() *List {
	return &List{
		collator: collate.New(language.Und, collate.IgnoreCase),
		view:     binding.NewUntypedList(),
	}
}

// Binding returns the data binding the list view should be bound to.
// Each value is a model.SearchResult.
func (l *List) Binding() binding.UntypedList {
	return l.view
}

// Clear removes every result
func (l *List) Clear() error {
	l.mu.Lock()
	l.items = nil
	l.mu.Unlock()

	return l.project()
}

// Append adds a result at the end of the list
func (l *List) Append(result model.SearchResult) error {
	l.mu.Lock()
	l.items = append(l.items, result)
	l.mu.Unlock()

	return l.project()
}

// Replace clears the list and repopulates it from rs in order, as a single view update
func (l *List) Replace(rs model.ResultSet) error {
	l.mu.Lock()
	l.items = append(make([]model.SearchResult, 0, len(rs)), rs...)
	l.mu.Unlock()

	return l.project()
}

// Len returns the number of results
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Items returns a copy of the results in insertion order
func (l *List) Items() model.ResultSet {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append(model.ResultSet{}, l.items...)
}

// SetSortByText toggles sorting the view by headword. Items() order is unaffected.
func (l *List) SetSortByText(enabled bool) error {
	l.mu.Lock()
	changed := l.sortByText != enabled
	l.sortByText = enabled
	l.mu.Unlock()

	if !changed {
		return nil
	}
	return l.project()
}

// SortByText reports whether the view is sorted by headword
func (l *List) SortByText() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sortByText
}

// ViewItems returns the results in the order the view shows them
func (l *List) ViewItems() model.ResultSet {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.viewOrderLocked()
}

// At returns the result shown at view row index
func (l *List) At(index int) (model.SearchResult, bool) {
	value, err := l.view.GetValue(index)
	if err != nil {
		return model.SearchResult{}, false
	}
	result, ok := value.(model.SearchResult)
	return result, ok
}

func (l *List) viewOrderLocked() model.ResultSet {
	ordered := append(model.ResultSet{}, l.items...)
	if l.sortByText {
		sort.SliceStable(ordered, func(i, j int) bool {
			return l.collator.CompareString(ordered[i].Text, ordered[j].Text) < 0
		})
	}
	return ordered
}

// project pushes the current view order into the binding.
// The lock is released first because listeners may read the list back.
func (l *List) project() error {
	l.mu.Lock()
	ordered := l.viewOrderLocked()
	l.mu.Unlock()

	values := make([]any, 0, len(ordered))
	for _, r := range ordered {
		values = append(values, r)
	}
	if err := l.view.Set(values); err != nil {
		return fmt.Errorf("failed to update result view: %w", err)
	}
	return nil
}
