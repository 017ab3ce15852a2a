package repository

import (
	"context"
	"errors"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindByName(ctx context.Context, name string) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log,
	}
}

// Create inserts an active movie. The partial unique index on name
// (active rows only) closes the concurrent-create race; a violation
// surfaces as ErrDuplicateName.
func (mr *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, name, duration_in_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := mr.db.Exec(ctx, query,
		movie.ID,
		movie.Name,
		movie.DurationInMinutes,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("create movie %s: %w", movie.Name, ErrDuplicateName)
		}

		mr.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("name", movie.Name),
		)
		return fmt.Errorf("create movie %s: %w", movie.Name, err)
	}

	return nil
}

func (mr *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, name, duration_in_minutes, created_at, updated_at, deleted_at
		FROM movies
		WHERE id = $1 AND deleted_at IS NULL
	`

	var movie entity.Movie
	err := mr.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Name,
		&movie.DurationInMinutes,
		&movie.CreatedAt,
		&movie.UpdatedAt,
		&movie.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		mr.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return &movie, nil
}

// FindByName returns the record holding a name regardless of lifecycle
// state, preferring an active row over a soft-deleted namesake. Callers
// use DeletedAt to tell a hard conflict from a restorable one.
func (mr *movieRepository) FindByName(ctx context.Context, name string) (*entity.Movie, error) {
	query := `
		SELECT id, name, duration_in_minutes, created_at, updated_at, deleted_at
		FROM movies
		WHERE name = $1
		ORDER BY (deleted_at IS NULL) DESC, created_at DESC
		LIMIT 1
	`

	var movie entity.Movie
	err := mr.db.QueryRow(ctx, query, name).Scan(
		&movie.ID,
		&movie.Name,
		&movie.DurationInMinutes,
		&movie.CreatedAt,
		&movie.UpdatedAt,
		&movie.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		mr.log.Error("Failed to find movie by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find movie by name %s: %w", name, err)
	}

	return &movie, nil
}

// FindAll retrieves every active movie. No pagination on this surface.
func (mr *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, name, duration_in_minutes, created_at, updated_at
		FROM movies
		WHERE deleted_at IS NULL
	`

	rows, err := mr.db.Query(ctx, query)
	if err != nil {
		mr.log.Error("Failed to get all movies", zap.Error(err))
		return nil, fmt.Errorf("find all movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Name,
			&movie.DurationInMinutes,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			mr.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		mr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movies rows: %w", err)
	}

	return movies, nil
}

// Update mutates active rows only; a soft-deleted movie reports ErrNotFound.
func (mr *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET name = $2, duration_in_minutes = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := mr.db.Exec(ctx, query,
		movie.ID,
		movie.Name,
		movie.DurationInMinutes,
		movie.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("update movie %s: %w", movie.ID.String(), ErrDuplicateName)
		}

		mr.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update movie %s: %w", movie.ID.String(), ErrNotFound)
	}

	return nil
}

// SoftDelete matches only active rows; deleting an already-deleted id
// reports ErrNotFound, not success.
func (mr *movieRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE movies SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := mr.db.Exec(ctx, query, id)
	if err != nil {
		mr.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete movie %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete movie %s: %w", id.String(), ErrNotFound)
	}

	mr.log.Info("Movie deleted", zap.String("id", id.String()))
	return nil
}

// Restore matches only soft-deleted rows.
func (mr *movieRepository) Restore(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE movies SET deleted_at = NULL, updated_at = NOW() WHERE id = $1 AND deleted_at IS NOT NULL`

	result, err := mr.db.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("restore movie %s: %w", id.String(), ErrDuplicateName)
		}

		mr.log.Error("Failed to restore movie",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("restore movie %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restore movie %s: %w", id.String(), ErrNotFound)
	}

	mr.log.Info("Movie restored", zap.String("id", id.String()))
	return nil
}
