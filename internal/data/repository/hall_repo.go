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

type HallRepository interface {
	Create(ctx context.Context, hall *entity.Hall) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error)
	FindByName(ctx context.Context, name string) (*entity.Hall, error)
	FindAll(ctx context.Context) ([]*entity.Hall, error)
	Update(ctx context.Context, hall *entity.Hall) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
}

type hallRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHallRepository(db database.PgxIface, log *zap.Logger) HallRepository {
	return &hallRepository{
		db:  db,
		log: log,
	}
}

func (hr *hallRepository) Create(ctx context.Context, hall *entity.Hall) error {
	query := `
		INSERT INTO halls (id, name, type, screen_type, seats, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := hr.db.Exec(ctx, query,
		hall.ID,
		hall.Name,
		hall.Type,
		hall.ScreenType,
		hall.Seats,
		hall.CreatedAt,
		hall.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("create hall %s: %w", hall.Name, ErrDuplicateName)
		}

		hr.log.Error("Failed to create hall",
			zap.Error(err),
			zap.String("name", hall.Name),
		)
		return fmt.Errorf("create hall %s: %w", hall.Name, err)
	}

	return nil
}

func (hr *hallRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error) {
	query := `
		SELECT id, name, type, screen_type, seats, created_at, updated_at, deleted_at
		FROM halls
		WHERE id = $1 AND deleted_at IS NULL
	`

	var hall entity.Hall
	err := hr.db.QueryRow(ctx, query, id).Scan(
		&hall.ID,
		&hall.Name,
		&hall.Type,
		&hall.ScreenType,
		&hall.Seats,
		&hall.CreatedAt,
		&hall.UpdatedAt,
		&hall.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		hr.log.Error("Failed to find hall by ID",
			zap.Error(err),
			zap.String("hall_id", id.String()),
		)
		return nil, fmt.Errorf("find hall by ID %s: %w", id.String(), err)
	}

	return &hall, nil
}

// FindByName prefers an active row over a soft-deleted namesake, same
// contract as the movie repository.
func (hr *hallRepository) FindByName(ctx context.Context, name string) (*entity.Hall, error) {
	query := `
		SELECT id, name, type, screen_type, seats, created_at, updated_at, deleted_at
		FROM halls
		WHERE name = $1
		ORDER BY (deleted_at IS NULL) DESC, created_at DESC
		LIMIT 1
	`

	var hall entity.Hall
	err := hr.db.QueryRow(ctx, query, name).Scan(
		&hall.ID,
		&hall.Name,
		&hall.Type,
		&hall.ScreenType,
		&hall.Seats,
		&hall.CreatedAt,
		&hall.UpdatedAt,
		&hall.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		hr.log.Error("Failed to find hall by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find hall by name %s: %w", name, err)
	}

	return &hall, nil
}

func (hr *hallRepository) FindAll(ctx context.Context) ([]*entity.Hall, error) {
	query := `
		SELECT id, name, type, screen_type, seats, created_at, updated_at
		FROM halls
		WHERE deleted_at IS NULL
	`

	rows, err := hr.db.Query(ctx, query)
	if err != nil {
		hr.log.Error("Failed to get all halls", zap.Error(err))
		return nil, fmt.Errorf("find all halls: %w", err)
	}
	defer rows.Close()

	var halls []*entity.Hall
	for rows.Next() {
		var hall entity.Hall
		err := rows.Scan(
			&hall.ID,
			&hall.Name,
			&hall.Type,
			&hall.ScreenType,
			&hall.Seats,
			&hall.CreatedAt,
			&hall.UpdatedAt,
		)
		if err != nil {
			hr.log.Error("Failed to scan hall row", zap.Error(err))
			return nil, fmt.Errorf("scan hall row: %w", err)
		}
		halls = append(halls, &hall)
	}

	if err := rows.Err(); err != nil {
		hr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate halls rows: %w", err)
	}

	return halls, nil
}

func (hr *hallRepository) Update(ctx context.Context, hall *entity.Hall) error {
	query := `
		UPDATE halls
		SET name = $2, type = $3, screen_type = $4, seats = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := hr.db.Exec(ctx, query,
		hall.ID,
		hall.Name,
		hall.Type,
		hall.ScreenType,
		hall.Seats,
		hall.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("update hall %s: %w", hall.ID.String(), ErrDuplicateName)
		}

		hr.log.Error("Failed to update hall",
			zap.Error(err),
			zap.String("hall_id", hall.ID.String()),
		)
		return fmt.Errorf("update hall %s: %w", hall.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update hall %s: %w", hall.ID.String(), ErrNotFound)
	}

	return nil
}

func (hr *hallRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE halls SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := hr.db.Exec(ctx, query, id)
	if err != nil {
		hr.log.Error("Failed to delete hall",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete hall %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete hall %s: %w", id.String(), ErrNotFound)
	}

	hr.log.Info("Hall deleted", zap.String("id", id.String()))
	return nil
}

func (hr *hallRepository) Restore(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE halls SET deleted_at = NULL, updated_at = NOW() WHERE id = $1 AND deleted_at IS NOT NULL`

	result, err := hr.db.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("restore hall %s: %w", id.String(), ErrDuplicateName)
		}

		hr.log.Error("Failed to restore hall",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("restore hall %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restore hall %s: %w", id.String(), ErrNotFound)
	}

	hr.log.Info("Hall restored", zap.String("id", id.String()))
	return nil
}
