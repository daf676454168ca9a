package tmdb

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mmcdole/flick/internal/domain"
)

// Discover query parameter names
const (
	paramGenres    = "with_genres"
	paramDateFrom  = "primary_release_date.gte"
	paramDateTo    = "primary_release_date.lte"
	paramMinRating = "vote_average.gte"
)

// DiscoverParams translates facets into discover query parameters.
// Unset facets contribute nothing.
func DiscoverParams(f domain.Facets) url.Values {
	params := url.Values{}

	if len(f.Genres) > 0 {
		ids := make([]string, len(f.Genres))
		for i, id := range f.Genres {
			ids[i] = strconv.Itoa(id)
		}
		params.Set(paramGenres, strings.Join(ids, ","))
	}
	if f.YearFrom > 0 {
		params.Set(paramDateFrom, fmt.Sprintf("%04d-01-01", f.YearFrom))
	}
	if f.YearTo > 0 {
		params.Set(paramDateTo, fmt.Sprintf("%04d-12-31", f.YearTo))
	}
	if f.MinRating > 0 {
		params.Set(paramMinRating, strconv.FormatFloat(f.MinRating, 'f', -1, 64))
	}

	return params
}
