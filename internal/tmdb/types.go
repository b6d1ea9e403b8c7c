package tmdb

// Movie mirrors the movie objects TMDB returns in list endpoints. Records are
// never edited after decoding.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path,omitempty"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date,omitempty"`
	Overview    string  `json:"overview,omitempty"`
}

// ListResponse mirrors the paged envelope shared by trending, search, and
// discover.
type ListResponse struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// DiscoverQuery configures /discover/movie requests.
type DiscoverQuery struct {
	Page  int
	Genre int // zero means any genre
}

// errorResponse is TMDB's error body.
type errorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
