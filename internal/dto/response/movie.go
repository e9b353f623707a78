package response

import (
	"movie-review/internal/data/entity"
	"movie-review/internal/dto/request"
)

type MovieResponse = entity.MovieSummary

type MovieDetailResponse = entity.MovieDetail

// MovieSearchResponse is the data of GET /api/movies.
type MovieSearchResponse struct {
	Query string `json:"query"`
	*PaginatedResponse[MovieResponse]
}

// MoviePageToResponse converts a search page into the paginated envelope.
func MoviePageToResponse(page *entity.MoviePage) *MovieSearchResponse {
	movies := page.Movies
	if movies == nil {
		movies = []MovieResponse{}
	}

	return &MovieSearchResponse{
		Query:             page.Query,
		PaginatedResponse: NewPaginatedResponse(movies, page.Page, request.OMDbPageSize, int64(page.TotalResults)),
	}
}

// MovieSearchToPage is the inverse of MoviePageToResponse.
func MovieSearchToPage(resp *MovieSearchResponse) *entity.MoviePage {
	page := &entity.MoviePage{Query: resp.Query}
	if resp.PaginatedResponse != nil {
		page.Page = resp.Pagination.Page
		page.Movies = resp.Data
		page.TotalResults = int(resp.Pagination.Total)
	}
	return page
}
