package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedUser(t *testing.T, repo *fakeUserRepo, role entity.UserRole) *entity.User {
	t.Helper()

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     "worker-" + uuid.NewString()[:8],
		Email:        uuid.NewString()[:8] + "@cinema.local",
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		Role:         role,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestAdminService_AssignRole(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	svc := NewAdminService(users, zap.NewNop())
	ctx := context.Background()

	employee := seedUser(t, users, entity.RoleUnassigned)

	msg, err := svc.AssignRole(ctx, &request.AssignRoleRequest{
		UserID: employee.ID.String(),
		Role:   string(entity.RoleHallManager),
	})
	require.NoError(t, err)
	require.Contains(t, msg, "HALL_MANAGER")

	stored, err := users.FindByID(ctx, employee.ID)
	require.NoError(t, err)
	require.Equal(t, entity.RoleHallManager, stored.Role)
}

func TestAdminService_AssignRoleOneShot(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	svc := NewAdminService(users, zap.NewNop())
	ctx := context.Background()

	employee := seedUser(t, users, entity.RoleUnassigned)

	_, err := svc.AssignRole(ctx, &request.AssignRoleRequest{
		UserID: employee.ID.String(),
		Role:   string(entity.RoleMoviesManager),
	})
	require.NoError(t, err)

	// Second assignment is rejected, even to the same role
	_, err = svc.AssignRole(ctx, &request.AssignRoleRequest{
		UserID: employee.ID.String(),
		Role:   string(entity.RoleMoviesManager),
	})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestAdminService_AssignRoleRejectsNonAssignable(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	svc := NewAdminService(users, zap.NewNop())
	ctx := context.Background()

	employee := seedUser(t, users, entity.RoleUnassigned)

	for _, role := range []string{
		string(entity.RoleSuperAdmin),
		string(entity.RoleUser),
		string(entity.RoleUnassigned),
		"JANITOR",
	} {
		_, err := svc.AssignRole(ctx, &request.AssignRoleRequest{
			UserID: employee.ID.String(),
			Role:   role,
		})
		require.ErrorIs(t, err, ErrValidation, "role %s must not be assignable", role)
	}
}

func TestAdminService_AssignRoleUserNotFound(t *testing.T) {
	t.Parallel()

	svc := NewAdminService(newFakeUserRepo(), zap.NewNop())

	_, err := svc.AssignRole(context.Background(), &request.AssignRoleRequest{
		UserID: uuid.NewString(),
		Role:   string(entity.RoleTicketsManager),
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAdminService_AssignRoleBadID(t *testing.T) {
	t.Parallel()

	svc := NewAdminService(newFakeUserRepo(), zap.NewNop())

	_, err := svc.AssignRole(context.Background(), &request.AssignRoleRequest{
		UserID: "not-a-uuid",
		Role:   string(entity.RoleEmployee),
	})
	require.ErrorIs(t, err, ErrValidation)
}
