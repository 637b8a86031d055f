package lookup

import (
	"context"
	"time"

	"github.com/philologus/philologus-desktop/internal/model"
)

// Searcher defines the interface for the remote lookup client.
type Searcher interface {
	// Lookup runs one search for query and returns the results in server order.
	// Errors are *NetworkError, *HTTPStatusError or *DecodeError. A malformed
	// endpoint is reported as a *NetworkError before any request is sent.
	Lookup(ctx context.Context, query string) (model.ResultSet, error)
}

// Configurable is implemented by searchers whose target can change at runtime.
type Configurable interface {
	SetEndpoint(endpoint string)
	SetLexicon(lexicon string)
	SetTimeout(timeout time.Duration)
}
