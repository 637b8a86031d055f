package search

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/philologus/philologus-desktop/internal/lookup"
	"github.com/philologus/philologus-desktop/internal/model"
	"github.com/philologus/philologus-desktop/internal/results"
)

// Dispatcher runs fn on the UI thread. In the app this is fyne.Do.
type Dispatcher func(fn func())

// Options configures a Controller
type Options struct {
	// Debounce coalesces changes arriving within this window into one lookup. Zero dispatches on every change.
	Debounce time.Duration
	Logger   *zap.Logger
}

// Controller drives lookups from search entry changes and commits results to the list.
// Only the newest dispatched lookup may commit; older completions are discarded.
type Controller struct {
	searcher lookup.Searcher
	results  *results.List
	dispatch Dispatcher
	logger   *zap.Logger

	mu       sync.Mutex
	query    model.QueryState
	seq      uint64
	state    model.LookupState
	cancel   context.CancelFunc
	debounce time.Duration
	timer    *time.Timer
	closed   bool

	onState  func(model.LookupState)
	onError  func(query string, err error)
	onCommit func(query string, count int)
}

// NewController creates a controller that owns the given searcher and result list
func NewController(searcher lookup.Searcher, list *results.List, dispatch Dispatcher, opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}

	return &Controller{
		searcher: searcher,
		results:  list,
		dispatch: dispatch,
		logger:   opts.Logger.Named("search"),
		state:    model.LookupStateIdle,
		debounce: opts.Debounce,
	}
}

// SetStateCallback sets the callback invoked on the UI thread when the state changes
func (c *Controller) SetStateCallback(callback func(model.LookupState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onState = callback
}

// SetErrorCallback sets the callback invoked on the UI thread when the newest lookup fails
func (c *Controller) SetErrorCallback(callback func(query string, err error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onError = callback
}

// SetCommitCallback sets the callback invoked on the UI thread after results are committed
func (c *Controller) SetCommitCallback(callback func(query string, count int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onCommit = callback
}

// SetDebounce changes the debounce window for subsequent changes
func (c *Controller) SetDebounce(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debounce = d
}

// Query returns the current query text
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query.Text
}

// State returns the current lookup state
func (c *Controller) State() model.LookupState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OnQueryChanged handles a text-change event from the search entry
func (c *Controller) OnQueryChanged(text string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.query.Set(text)

	if c.debounce <= 0 {
		c.mu.Unlock()
		c.Refresh()
		return
	}

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.dispatch(c.Refresh)
	})
	c.mu.Unlock()
}

// Refresh dispatches a lookup for the current query, superseding any lookup in flight
func (c *Controller) Refresh() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	seq := c.seq
	query := c.query.Text

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	changed := c.setStateLocked(model.LookupStateAwaiting)
	onState := c.onState
	c.mu.Unlock()

	if changed && onState != nil {
		onState(model.LookupStateAwaiting)
	}

	c.logger.Debug("dispatching lookup", zap.Uint64("seq", seq), zap.String("query", query))

	go func() {
		rs, err := c.searcher.Lookup(ctx, query)
		c.dispatch(func() {
			c.complete(seq, query, rs, err)
		})
	}()
}

// complete runs on the UI thread when a lookup finishes
func (c *Controller) complete(seq uint64, query string, rs model.ResultSet, err error) {
	c.mu.Lock()
	if seq != c.seq || c.closed {
		c.mu.Unlock()
		c.logger.Debug("discarding stale lookup", zap.Uint64("seq", seq), zap.String("query", query))
		return
	}

	c.cancel()
	c.cancel = nil
	changed := c.setStateLocked(model.LookupStateIdle)
	onState, onError, onCommit := c.onState, c.onError, c.onCommit
	c.mu.Unlock()

	if err != nil {
		if lookup.IsCanceled(err) {
			c.logger.Debug("lookup cancelled", zap.String("query", query))
		} else {
			c.logger.Warn("lookup failed, keeping previous results", zap.String("query", query), zap.Error(err))
			if onError != nil {
				onError(query, err)
			}
		}
	} else if err := c.results.Replace(rs); err != nil {
		c.logger.Error("failed to commit lookup results", zap.String("query", query), zap.Error(err))
		if onError != nil {
			onError(query, err)
		}
	} else {
		c.logger.Debug("committed lookup results", zap.String("query", query), zap.Int("results", rs.Len()))
		if onCommit != nil {
			onCommit(query, rs.Len())
		}
	}

	if changed && onState != nil {
		onState(model.LookupStateIdle)
	}
}

// Close cancels any lookup in flight and stops the debounce timer
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state = model.LookupStateIdle
}

func (c *Controller) setStateLocked(state model.LookupState) bool {
	if c.state == state {
		return false
	}
	c.state = state
	return true
}
