package domain

import "context"

// ContentGateway is the network boundary to the content API.
// Implemented by tmdb.Client.
type ContentGateway interface {
	// Search returns one page of free-text results. An empty query fails
	// with ErrEmptyQuery before any request is made.
	Search(ctx context.Context, query string, page int) (Page, error)

	// Category returns one page of a remote listing (popular, top_rated, ...)
	Category(ctx context.Context, category Category, page int) (Page, error)

	// Discover returns one page of results constrained by facets
	Discover(ctx context.Context, facets Facets, page int) (Page, error)

	// Genres returns the available genre list
	Genres(ctx context.Context) ([]Genre, error)

	// Detail returns the extended record for one item, or ErrDetailUnavailable
	Detail(ctx context.Context, id int) (*Item, error)
}

// KVStore is the synchronous persistence substrate.
// Implemented by store.Store.
type KVStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Well-known KVStore keys
const (
	KeyFavorites  = "favorites"
	KeyHistory    = "history"
	KeyLastViewed = "last_viewed"
	KeyTheme      = "theme"
)
