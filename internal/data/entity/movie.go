package entity

// MovieSummary is one row of a movie search result.
type MovieSummary struct {
	ID     string `json:"imdbId"`
	Title  string `json:"title"`
	Year   string `json:"year"`
	Type   string `json:"type"`
	Poster string `json:"poster,omitempty"`
}

// MovieDetail is the full record of a single movie.
type MovieDetail struct {
	MovieSummary
	Rated      string `json:"rated,omitempty"`
	Released   string `json:"released,omitempty"`
	Runtime    string `json:"runtime,omitempty"`
	Genre      string `json:"genre,omitempty"`
	Director   string `json:"director,omitempty"`
	Writer     string `json:"writer,omitempty"`
	Actors     string `json:"actors,omitempty"`
	Plot       string `json:"plot,omitempty"`
	IMDbRating string `json:"imdbRating,omitempty"`
}

// MoviePage is one page of search results.
type MoviePage struct {
	Query        string         `json:"query"`
	Page         int            `json:"page"`
	Movies       []MovieSummary `json:"movies"`
	TotalResults int            `json:"totalResults"`
}
