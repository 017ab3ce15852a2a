package usecase

import (
	"context"
	"errors"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	AssignRole(ctx context.Context, req *request.AssignRoleRequest) (string, error)
}

type adminService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewAdminService(users repository.UserRepository, log *zap.Logger) AdminService {
	return &adminService{
		users: users,
		log:   log.With(zap.String("service", "admin")),
	}
}

// AssignRole moves an UNASSIGNED employee to a working role. The transition
// is one-shot: once a role is set it cannot be changed through this
// workflow. The caller is role-gated at the route.
func (s *adminService) AssignRole(ctx context.Context, req *request.AssignRoleRequest) (string, error) {
	// 1. Validate payload shape
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Assign role validation failed", zap.Any("errors", errs))
		return "", fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	newRole := entity.UserRole(req.Role)
	if !entity.AssignableRoles[newRole] {
		return "", fmt.Errorf("%w: role %s is not assignable", ErrValidation, req.Role)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return "", fmt.Errorf("%w: invalid user id", ErrValidation)
	}

	// 2. Resolve target account
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user for role assignment",
			zap.Error(err),
			zap.String("user_id", req.UserID))
		return "", fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return "", fmt.Errorf("user %w", ErrNotFound)
	}

	// 3. Only UNASSIGNED accounts may receive a role
	if user.Role != entity.RoleUnassigned {
		s.log.Warn("Role assignment to already-assigned user blocked",
			zap.String("user_id", req.UserID),
			zap.String("current_role", string(user.Role)))
		return "", fmt.Errorf("user already has role %s: %w", user.Role, ErrForbidden)
	}

	// 4. Persist the single field write
	if err := s.users.UpdateRole(ctx, userID, newRole); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", fmt.Errorf("user %w", ErrNotFound)
		}
		s.log.Error("Failed to assign role",
			zap.Error(err),
			zap.String("user_id", req.UserID),
			zap.String("role", req.Role))
		return "", fmt.Errorf("assign role: %w", err)
	}

	s.log.Info("Role assigned",
		zap.String("user_id", req.UserID),
		zap.String("username", user.Username),
		zap.String("role", req.Role))

	return fmt.Sprintf("Role %s assigned to %s", newRole, user.Username), nil
}
