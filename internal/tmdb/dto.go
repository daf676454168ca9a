package tmdb

// MovieResult is one entry of a paginated movie listing
type MovieResult struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids"`
}

// ListResponse is the envelope shared by search, category and discover
type ListResponse struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// GenreDTO is a genre as returned by the genre list and detail endpoints
type GenreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreListResponse wraps /genre/movie/list
type GenreListResponse struct {
	Genres []GenreDTO `json:"genres"`
}

// MovieDetails is the /movie/{id} payload
type MovieDetails struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Overview     string     `json:"overview"`
	Tagline      string     `json:"tagline"`
	PosterPath   string     `json:"poster_path"`
	BackdropPath string     `json:"backdrop_path"`
	ReleaseDate  string     `json:"release_date"`
	Runtime      int        `json:"runtime"`
	VoteAverage  float64    `json:"vote_average"`
	Revenue      int64      `json:"revenue"`
	Genres       []GenreDTO `json:"genres"`
}

// ErrorResponse is the body TMDB sends with non-2xx statuses
type ErrorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
