package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/dto/response"
	"cinema-manager/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
	RestoreMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	movies repository.MovieRepository
	log    *zap.Logger
}

func NewMovieService(
	movies repository.MovieRepository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		movies: movies,
		log:    log.With(zap.String("service", "movie")),
	}
}

// GetMovies returns every active movie. Soft-deleted records never appear.
func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.movies.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	return response.MoviesToResponse(movies), nil
}

// CreateMovie inserts an active movie. An active namesake is a hard
// conflict; a soft-deleted namesake asks the caller to restore instead.
func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	// Validate request data
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// Look up existing record by name, active or deleted
	existing, err := s.movies.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check movie name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("check movie name: %w", err)
	}
	if existing != nil {
		if existing.DeletedAt == nil {
			return nil, fmt.Errorf("movie %q %w", req.Name, ErrConflict)
		}
		return nil, fmt.Errorf("movie %q %w", req.Name, ErrConflictDeleted)
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:              req.Name,
		DurationInMinutes: req.DurationInMinutes,
	}

	if err := s.movies.Create(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			// Lost a race against a concurrent create with the same name;
			// the partial unique index is the arbiter
			return nil, fmt.Errorf("movie %q %w", req.Name, ErrConflict)
		}
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("name", movie.Name),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

// UpdateMovie applies a partial update to an active movie. Soft-deleted
// movies report not found; restore first, then edit.
func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie id", ErrValidation)
	}

	if !req.HasChanges() {
		return nil, fmt.Errorf("%w: at least one field is required", ErrValidation)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// Find existing active movie
	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %w", ErrNotFound)
	}

	// Apply partial updates only for provided fields
	if req.Name != nil {
		movie.Name = *req.Name
	}
	if req.DurationInMinutes != nil {
		movie.DurationInMinutes = *req.DurationInMinutes
	}

	movie.UpdatedAt = time.Now()
	if err := s.movies.Update(ctx, movie); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("movie %w", ErrNotFound)
		case errors.Is(err, repository.ErrDuplicateName):
			return nil, fmt.Errorf("movie %q %w", movie.Name, ErrConflict)
		}
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("name", movie.Name),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

// DeleteMovie soft-deletes an active movie. Deleting an already-deleted
// or unknown id reports not found, never success.
func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("%w: invalid movie id", ErrValidation)
	}

	if err := s.movies.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("movie %w", ErrNotFound)
		}
		s.log.Error("Failed to delete movie", zap.Error(err), zap.String("movie_id", movieID))
		return fmt.Errorf("delete movie: %w", err)
	}

	return nil
}

// RestoreMovie clears the deletion mark on a soft-deleted movie.
func (s *movieService) RestoreMovie(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("%w: invalid movie id", ErrValidation)
	}

	if err := s.movies.Restore(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return fmt.Errorf("movie %w", ErrNotFound)
		case errors.Is(err, repository.ErrDuplicateName):
			// An active record took the name while this one was deleted
			return fmt.Errorf("an active movie with this name %w", ErrConflict)
		}
		s.log.Error("Failed to restore movie", zap.Error(err), zap.String("movie_id", movieID))
		return fmt.Errorf("restore movie: %w", err)
	}

	return nil
}
