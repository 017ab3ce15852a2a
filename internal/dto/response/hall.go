package response

import (
	"time"

	"cinema-manager/internal/data/entity"
)

type HallResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Type       entity.HallType   `json:"type"`
	ScreenType entity.ScreenType `json:"screen_type"`
	Seats      int               `json:"seats"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func HallToResponse(hall *entity.Hall) HallResponse {
	return HallResponse{
		ID:         hall.ID.String(),
		Name:       hall.Name,
		Type:       hall.Type,
		ScreenType: hall.ScreenType,
		Seats:      hall.Seats,
		CreatedAt:  hall.CreatedAt,
		UpdatedAt:  hall.UpdatedAt,
	}
}

func HallsToResponse(halls []*entity.Hall) []HallResponse {
	out := make([]HallResponse, len(halls))
	for i, h := range halls {
		out[i] = HallToResponse(h)
	}
	return out
}
