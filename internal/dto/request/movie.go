package request

// PopularQuery is the search term that asks for a random featured query.
const PopularQuery = "popular"

// SearchMoviesRequest is built from the query string of GET /api/movies.
type SearchMoviesRequest struct {
	Query string `json:"s"`
	Page  int    `json:"page" validate:"min=1,max=100"`
}

// IsPopular reports whether the caller asked for the default listing.
func (r SearchMoviesRequest) IsPopular() bool {
	return r.Query == "" || r.Query == PopularQuery
}
