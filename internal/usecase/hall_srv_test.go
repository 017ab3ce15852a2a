package usecase

import (
	"context"
	"testing"

	"cinema-manager/internal/dto/request"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHallService(t *testing.T) HallService {
	t.Helper()
	return NewHallService(newFakeHallRepo(), zap.NewNop())
}

func TestHallService_Lifecycle(t *testing.T) {
	t.Parallel()

	svc := newHallService(t)
	ctx := context.Background()

	created, err := svc.CreateHall(ctx, &request.HallRequest{
		Name:       "Hall A",
		Type:       "premium",
		ScreenType: "IMAX",
		Seats:      220,
	})
	require.NoError(t, err)

	// Active namesake is a hard conflict
	_, err = svc.CreateHall(ctx, &request.HallRequest{
		Name:       "Hall A",
		Type:       "regular",
		ScreenType: "2D",
		Seats:      100,
	})
	require.ErrorIs(t, err, ErrConflict)

	// Deleted namesake asks for restore instead
	require.NoError(t, svc.DeleteHall(ctx, created.ID))

	_, err = svc.CreateHall(ctx, &request.HallRequest{
		Name:       "Hall A",
		Type:       "regular",
		ScreenType: "2D",
		Seats:      100,
	})
	require.ErrorIs(t, err, ErrConflictDeleted)

	require.NoError(t, svc.RestoreHall(ctx, created.ID))

	halls, err := svc.GetHalls(ctx)
	require.NoError(t, err)
	require.Len(t, halls, 1)
	require.Equal(t, 220, halls[0].Seats)
}

func TestHallService_CreateValidation(t *testing.T) {
	t.Parallel()

	svc := newHallService(t)

	// Unknown screen type
	_, err := svc.CreateHall(context.Background(), &request.HallRequest{
		Name:       "Hall B",
		Type:       "regular",
		ScreenType: "8K",
		Seats:      50,
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestHallService_UpdatePartial(t *testing.T) {
	t.Parallel()

	svc := newHallService(t)
	ctx := context.Background()

	created, err := svc.CreateHall(ctx, &request.HallRequest{
		Name:       "Hall C",
		Type:       "regular",
		ScreenType: "2D",
		Seats:      80,
	})
	require.NoError(t, err)

	seats := 96
	updated, err := svc.UpdateHall(ctx, created.ID, &request.HallUpdateRequest{Seats: &seats})
	require.NoError(t, err)
	require.Equal(t, "Hall C", updated.Name)
	require.Equal(t, 96, updated.Seats)

	_, err = svc.UpdateHall(ctx, created.ID, &request.HallUpdateRequest{})
	require.ErrorIs(t, err, ErrValidation)
}

func TestHallService_DeleteNotFound(t *testing.T) {
	t.Parallel()

	svc := newHallService(t)

	err := svc.DeleteHall(context.Background(), "b7f3c6f0-26cf-4dd8-a0dd-bc03a0a6c92e")
	require.ErrorIs(t, err, ErrNotFound)
}
