package response

import (
	"time"

	"cinema-manager/internal/data/entity"
)

type MovieResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	DurationInMinutes int       `json:"duration_in_minutes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:                movie.ID.String(),
		Name:              movie.Name,
		DurationInMinutes: movie.DurationInMinutes,
		CreatedAt:         movie.CreatedAt,
		UpdatedAt:         movie.UpdatedAt,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = MovieToResponse(m)
	}
	return out
}
