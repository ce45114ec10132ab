package domain

//go:generate mockgen -source=searcher.go -destination=mock_searcher.go -package=domain

import "context"

// Default paging values for an airport search.
const (
	DefaultSearchLimit = 10
	DefaultSearchPage  = 1
)

// SearchParams are the query parameters of one airport search.
type SearchParams struct {
	// Query is the free-text search (e.g., "new york" or "JFK")
	Query string

	// Limit is the maximum number of airports to return (default 10)
	Limit int

	// Page is the 1-based result page (default 1)
	Page int
}

// WithDefaults returns a copy of p with zero or negative paging values replaced by the defaults.
func (p SearchParams) WithDefaults() SearchParams {
	if p.Limit <= 0 {
		p.Limit = DefaultSearchLimit
	}
	if p.Page <= 0 {
		p.Page = DefaultSearchPage
	}
	return p
}

// AirportSearcher performs one airport search.
// Implementations must respect context cancellation: a canceled search
// returns promptly with the context error.
type AirportSearcher interface {
	Search(ctx context.Context, params SearchParams) ([]Airport, error)
}
