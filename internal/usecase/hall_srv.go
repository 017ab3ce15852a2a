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

type HallService interface {
	GetHalls(ctx context.Context) ([]response.HallResponse, error)
	CreateHall(ctx context.Context, req *request.HallRequest) (*response.HallResponse, error)
	UpdateHall(ctx context.Context, hallID string, req *request.HallUpdateRequest) (*response.HallResponse, error)
	DeleteHall(ctx context.Context, hallID string) error
	RestoreHall(ctx context.Context, hallID string) error
}

type hallService struct {
	halls repository.HallRepository
	log   *zap.Logger
}

func NewHallService(
	halls repository.HallRepository,
	log *zap.Logger,
) HallService {
	return &hallService{
		halls: halls,
		log:   log.With(zap.String("service", "hall")),
	}
}

func (s *hallService) GetHalls(ctx context.Context) ([]response.HallResponse, error) {
	halls, err := s.halls.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get halls", zap.Error(err))
		return nil, fmt.Errorf("get halls: %w", err)
	}

	return response.HallsToResponse(halls), nil
}

// CreateHall mirrors the movie lifecycle: an active namesake is a hard
// conflict, a soft-deleted one points the caller at restore.
func (s *hallService) CreateHall(ctx context.Context, req *request.HallRequest) (*response.HallResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create hall validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.halls.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check hall name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("check hall name: %w", err)
	}
	if existing != nil {
		if existing.DeletedAt == nil {
			return nil, fmt.Errorf("hall %q %w", req.Name, ErrConflict)
		}
		return nil, fmt.Errorf("hall %q %w", req.Name, ErrConflictDeleted)
	}

	now := time.Now()
	hall := &entity.Hall{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:       req.Name,
		Type:       entity.HallType(req.Type),
		ScreenType: entity.ScreenType(req.ScreenType),
		Seats:      req.Seats,
	}

	if err := s.halls.Create(ctx, hall); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, fmt.Errorf("hall %q %w", req.Name, ErrConflict)
		}
		s.log.Error("Failed to create hall",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create hall: %w", err)
	}

	s.log.Info("Hall created",
		zap.String("hall_id", hall.ID.String()),
		zap.String("name", hall.Name),
	)

	hallResp := response.HallToResponse(hall)
	return &hallResp, nil
}

func (s *hallService) UpdateHall(ctx context.Context, hallID string, req *request.HallUpdateRequest) (*response.HallResponse, error) {
	id, err := uuid.Parse(hallID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hall id", ErrValidation)
	}

	if !req.HasChanges() {
		return nil, fmt.Errorf("%w: at least one field is required", ErrValidation)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update hall validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	hall, err := s.halls.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find hall: %w", err)
	}
	if hall == nil {
		return nil, fmt.Errorf("hall %w", ErrNotFound)
	}

	if req.Name != nil {
		hall.Name = *req.Name
	}
	if req.Type != nil {
		hall.Type = entity.HallType(*req.Type)
	}
	if req.ScreenType != nil {
		hall.ScreenType = entity.ScreenType(*req.ScreenType)
	}
	if req.Seats != nil {
		hall.Seats = *req.Seats
	}

	hall.UpdatedAt = time.Now()
	if err := s.halls.Update(ctx, hall); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("hall %w", ErrNotFound)
		case errors.Is(err, repository.ErrDuplicateName):
			return nil, fmt.Errorf("hall %q %w", hall.Name, ErrConflict)
		}
		s.log.Error("Failed to update hall",
			zap.Error(err),
			zap.String("hall_id", hallID),
		)
		return nil, fmt.Errorf("update hall: %w", err)
	}

	s.log.Info("Hall updated",
		zap.String("hall_id", hallID),
		zap.String("name", hall.Name),
	)

	hallResp := response.HallToResponse(hall)
	return &hallResp, nil
}

func (s *hallService) DeleteHall(ctx context.Context, hallID string) error {
	id, err := uuid.Parse(hallID)
	if err != nil {
		return fmt.Errorf("%w: invalid hall id", ErrValidation)
	}

	if err := s.halls.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("hall %w", ErrNotFound)
		}
		s.log.Error("Failed to delete hall", zap.Error(err), zap.String("hall_id", hallID))
		return fmt.Errorf("delete hall: %w", err)
	}

	return nil
}

func (s *hallService) RestoreHall(ctx context.Context, hallID string) error {
	id, err := uuid.Parse(hallID)
	if err != nil {
		return fmt.Errorf("%w: invalid hall id", ErrValidation)
	}

	if err := s.halls.Restore(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return fmt.Errorf("hall %w", ErrNotFound)
		case errors.Is(err, repository.ErrDuplicateName):
			return fmt.Errorf("an active hall with this name %w", ErrConflict)
		}
		s.log.Error("Failed to restore hall", zap.Error(err), zap.String("hall_id", hallID))
		return fmt.Errorf("restore hall: %w", err)
	}

	return nil
}
