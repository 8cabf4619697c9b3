package ports

import "context"

// Contract for persisting geocoded places between runs. Query keys are
// expected to be consistent (e.g., normalized) by the caller.
type PlaceCache interface {
	// Fetch a cached place. The second return reports whether the query was
	// present; a miss is not an error.
	Get(ctx context.Context, query string) (Place, bool, error)

	// Store a query -> place mapping in the cache.
	Put(ctx context.Context, query string, place Place) error
}
